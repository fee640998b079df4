package models

// Result is one exam outcome. Percentage and grade are server-computed; the
// client only displays them.
type Result struct {
	ID            string   `json:"_id"`
	StudentID     string   `json:"studentId"`
	Student       *UserRef `json:"student,omitempty"`
	ExamName      string   `json:"examName"`
	Subject       string   `json:"subject"`
	Class         string   `json:"class"`
	ExamDate      string   `json:"examDate"`
	TotalMarks    float64  `json:"totalMarks"`
	MarksObtained float64  `json:"marksObtained"`
	Percentage    float64  `json:"percentage"`
	Grade         string   `json:"grade"`
	Remarks       string   `json:"remarks,omitempty"`
}

// LeaderboardEntry is the derived, read-only ranking row.
type LeaderboardEntry struct {
	Rank              int     `json:"rank"`
	StudentID         string  `json:"studentId"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	ProfileImage      string  `json:"profileImage,omitempty"`
	AveragePercentage float64 `json:"averagePercentage"`
	TotalExams        int     `json:"totalExams"`
	HighestScore      float64 `json:"highestScore"`
}
