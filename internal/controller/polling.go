package controller

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// startPolling launches the unread-announcement ticker. It fetches once
// immediately so the badge is correct on the first render after login, then
// refreshes at a fixed interval until logout cancels it. A failed fetch keeps
// the previous count; there is no retry or backoff beyond the next tick.
func (c *Controller) startPolling() {
	c.stopPolling()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	c.mu.Lock()
	c.pollCancel = cancel
	c.pollDone = done
	c.mu.Unlock()

	go func() {
		defer close(done)
		c.refreshUnread(ctx)
		ticker := time.NewTicker(c.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.refreshUnread(ctx)
			}
		}
	}()
}

// stopPolling cancels the poll goroutine and waits for it to exit so a
// logout/login pair can never leave two tickers behind.
func (c *Controller) stopPolling() {
	c.mu.Lock()
	cancel := c.pollCancel
	done := c.pollDone
	c.pollCancel = nil
	c.pollDone = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// refreshUnread replaces the badge count from the dedicated count endpoint,
// which is the single source of truth for it.
func (c *Controller) refreshUnread(ctx context.Context) {
	count, err := c.api.UnreadAnnouncementCount(ctx)
	if err != nil {
		c.log.Debug("unread count refresh failed", zap.Error(err))
		return
	}
	c.mu.Lock()
	c.unread = count
	c.mu.Unlock()
}

// UnreadCount returns the last successfully fetched badge count.
func (c *Controller) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unread
}
