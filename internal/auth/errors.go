package auth

import "errors"

// Authentication errors
var (
	// ErrInvalidCredentials indicates no account matches the email and password
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken indicates an account with the email already exists
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrMissingCredentials indicates an empty email or password
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrInvalidEmail indicates the email has no local part or domain
	ErrInvalidEmail = errors.New("email address is invalid")

	// ErrPasswordTooLong indicates a password over the 72 bytes bcrypt accepts
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrInvalidSession indicates the stored session token failed verification
	ErrInvalidSession = errors.New("session is invalid or expired")
)

// messages are the texts LastError reports for each failure.
var messages = map[error]string{
	ErrInvalidCredentials: "Invalid email or password",
	ErrEmailTaken:         "User with this email already exists",
	ErrMissingCredentials: "Email and password are required",
	ErrInvalidEmail:       "Please enter a valid email address",
	ErrPasswordTooLong:    "Password must be at most 72 bytes",
}

func message(err error) string {
	for target, msg := range messages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return "Login failed. Please try again."
}
