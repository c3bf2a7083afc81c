package users

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	TouchLastActive(ctx context.Context, id string, t time.Time) error
}
