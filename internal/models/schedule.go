package models

// Schedule is purely informational; no conflict detection happens here.
type Schedule struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	MeetingLink string   `json:"meetingLink,omitempty"`
	Password    string   `json:"password,omitempty"`
	CreatedBy   *UserRef `json:"createdBy,omitempty"`
}
