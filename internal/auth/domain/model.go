package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"type:text;not null;uniqueIndex:ux_users_email"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;type:text;not null"`
	DisplayName  *string   `json:"display_name,omitempty" gorm:"column:display_name;type:text"`
	Role         string    `json:"role" gorm:"type:text;not null;default:'staff'"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (User) TableName() string { return "users" }

type Session struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	Token     string     `json:"-" gorm:"type:text;not null;uniqueIndex:ux_sessions_token"`
	UserID    int64      `json:"user_id" gorm:"column:user_id;not null;index:ix_sessions_user"`
	CreatedAt time.Time  `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

func (Session) TableName() string { return "sessions" }

func (s Session) Live(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// Identity is the authenticated principal attached to a request.
type Identity struct {
	User    User
	Session Session
}

func (i Identity) IsAdmin() bool { return i.User.Role == RoleAdmin }
