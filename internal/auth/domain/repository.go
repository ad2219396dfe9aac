package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*User, error)
	FindUserByID(ctx context.Context, db *gorm.DB, id int64) (*User, error)
	CreateUser(ctx context.Context, db *gorm.DB, user *User) error

	CreateSession(ctx context.Context, db *gorm.DB, session *Session) error
	FindSessionByToken(ctx context.Context, db *gorm.DB, token string) (*Session, error)
	RevokeSession(ctx context.Context, db *gorm.DB, id int64) error
}
