package view

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"fileSize": formatFileSize,
		"fmtTime":  formatTime,
		"fmtDate":  formatDate,
		"title":    capitalize,
	}
}

// formatFileSize renders a byte count the way the resource cards expect.
func formatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	size := float64(bytes)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d %s", bytes, units[0])
	}
	return fmt.Sprintf("%.2f %s", size, units[i])
}

// formatTime accepts both time.Time and *time.Time since some backend
// timestamps are optional.
func formatTime(v interface{}) string {
	var t time.Time
	switch val := v.(type) {
	case time.Time:
		t = val
	case *time.Time:
		if val == nil {
			return ""
		}
		t = *val
	default:
		return ""
	}
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// formatDate tolerates the backend's mixed date shapes: plain dates and full
// RFC 3339 timestamps both render as a calendar date; anything else passes
// through as-is.
func formatDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return raw
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
