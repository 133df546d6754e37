package user

// User represents a user entity in the system.
type User struct {
	ID   int64  // ID is assigned by the store on creation and never changes
	Name string // Name is the display name of the user
}
