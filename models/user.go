package models

import (
	"time"

	"golang.org/x/oauth2"
)

// User is one signed-in Calendxr account. Accounts are created and refreshed
// by the Google sign-in sync; there are no local credentials.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Picture   string    `bson:"picture,omitempty" json:"picture,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`

	// GoogleToken is the OAuth token granting calendar access for this user.
	GoogleToken *oauth2.Token `bson:"googleToken,omitempty" json:"-"`
}
