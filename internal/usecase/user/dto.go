package user

// CreateUserRequest represents the request payload for creating a new user.
// Presence of Name is checked by the transport layer.
type CreateUserRequest struct {
	Name string
}

// User represents a user DTO (Data Transfer Object) for API responses.
type User struct {
	ID   int64
	Name string
}
