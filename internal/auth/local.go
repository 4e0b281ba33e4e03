package auth

import (
	"os"
	"os/user"
)

// LocalUsername returns the operating system account running the process.
// Sessions are bound to it so a shared database file does not carry one
// account's login over to another.
// Falls back to $USER, then "unknown".
func LocalUsername() string {
	current, err := user.Current()
	if err != nil {
		if username := os.Getenv("USER"); username != "" {
			return username
		}
		return "unknown"
	}
	return current.Username
}
