package models

// Student is a user-shaped record created by a teacher through the dedicated
// roster endpoint rather than self-registration.
type Student struct {
	User
}
