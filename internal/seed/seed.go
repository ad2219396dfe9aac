package seed

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/fogonlabs/fogon/internal/auth/domain"
	"github.com/fogonlabs/fogon/internal/auth/password"
	sitesettingsdomain "github.com/fogonlabs/fogon/internal/sitesettings/domain"
	"gorm.io/gorm"
)

// EnsureDefaultSettings creates an empty site_settings row on first
// boot so the admin editor always has something to load.
func EnsureDefaultSettings(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&sitesettingsdomain.SiteSettings{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		row := sitesettingsdomain.SiteSettings{
			ID:        node.Generate().Int64(),
			UpdatedAt: &now,
		}
		return tx.Create(&row).Error
	})
}

// EnsureAdminUser creates the bootstrap admin account when no user
// with that email exists yet. The password is never rotated here.
func EnsureAdminUser(db *gorm.DB, email, rawPassword string) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || rawPassword == "" {
		return errors.New("seed admin credentials are required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&authdomain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hash, err := password.Hash(rawPassword)
		if err != nil {
			return err
		}

		display := "Administrador"
		user := authdomain.User{
			ID:           node.Generate().Int64(),
			Email:        email,
			PasswordHash: hash,
			DisplayName:  &display,
			Role:         authdomain.RoleAdmin,
			CreatedAt:    time.Now().UTC(),
		}
		return tx.Create(&user).Error
	})
}
