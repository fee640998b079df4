package models

import "time"

// ResourceType distinguishes the three distributed material kinds.
type ResourceType string

const (
	ResourceNote     ResourceType = "note"
	ResourceQuestion ResourceType = "question"
	ResourceBook     ResourceType = "book"
)

// Resource references a server-stored file by id; the binary payload never
// lives client-side.
type Resource struct {
	ID          string       `json:"_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Type        ResourceType `json:"type"`
	FileName    string       `json:"fileName"`
	FileSize    int64        `json:"fileSize"`
	UploadedBy  *UserRef     `json:"uploadedBy,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}
