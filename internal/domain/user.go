package domain

// User is an authentication placeholder entity
// Persisted and reachable through the storage layer, but no route binds it yet
type User struct {
	ID       int64
	Username string
	Password string
}
