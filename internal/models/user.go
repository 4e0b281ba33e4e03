package models

// User is reference data for task assignment. The store never mutates a user
// after it is added.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// GetID returns the user id.
func (u *User) GetID() string {
	return u.ID
}
