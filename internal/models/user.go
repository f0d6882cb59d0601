package models

// User is the person logged in to the current session. It only lives in
// memory.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
