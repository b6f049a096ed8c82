package userRepo

import (
	"calendxr/models"

	"golang.org/x/oauth2"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// Upsert inserts or refreshes a user record keyed by email. The stored
	// ID is preserved across upserts.
	Upsert(user *models.User) (*models.User, error)
	// SaveGoogleToken replaces the stored OAuth token for a user.
	SaveGoogleToken(id string, token *oauth2.Token) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
