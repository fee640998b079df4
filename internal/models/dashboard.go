package models

// DashboardStats carries the role-dependent aggregate counts. The backend
// fills the teacher fields for teachers and the student fields for students;
// the rest stay zero.
type DashboardStats struct {
	Notes     int `json:"notes,omitempty"`
	Questions int `json:"questions,omitempty"`
	Books     int `json:"books,omitempty"`
	Students  int `json:"students,omitempty"`
	Schedules int `json:"schedules,omitempty"`

	TotalResources    int `json:"totalResources,omitempty"`
	UpcomingSchedules int `json:"upcomingSchedules,omitempty"`
}
