package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	// Upsert inserts u or replaces the account with the same email.
	Upsert(ctx context.Context, u User) (User, error)
}
