package domain

// User is a reader who can log in by username. Usernames are unique and case-sensitive.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
