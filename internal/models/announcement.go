package models

import "time"

// AnnouncementPriority drives the badge styling on the notice board.
type AnnouncementPriority string

const (
	AnnouncementLow    AnnouncementPriority = "low"
	AnnouncementNormal AnnouncementPriority = "normal"
	AnnouncementHigh   AnnouncementPriority = "high"
)

// Announcement read-state is mutated through the dedicated mark-as-read call;
// the unread count comes from its own endpoint, never from filtering ReadBy
// client-side.
type Announcement struct {
	ID        string               `json:"_id"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	Priority  AnnouncementPriority `json:"priority"`
	CreatedBy *UserRef             `json:"createdBy,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
	ReadBy    []string             `json:"readBy,omitempty"`
}

// ReadByUser reports whether the given user id appears in the read set.
func (a Announcement) ReadByUser(userID string) bool {
	for _, id := range a.ReadBy {
		if id == userID {
			return true
		}
	}
	return false
}
