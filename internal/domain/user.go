package domain

import "context"

type User struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
}

// UserRepository is a read-only view of accounts managed by the authentication service.
type UserRepository interface {
	GetById(ctx context.Context, id int) (*User, error)
}
