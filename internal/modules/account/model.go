// Package account signs shoppers in and out and keeps their profile.
package account

import (
	"context"
	"net/http"
	"time"
)

// User is the profile a shopper fills in at sign up.
type User struct {
	Email       string `json:"email"`
	Nickname    string `json:"nickname"`
	PhoneNumber string `json:"phoneNumber"`
}

// AuthUser is the signed-in identity returned by a successful sign in.
type AuthUser struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Authenticator is the identity provider.
type Authenticator interface {
	CurrentUser(ctx context.Context) (User, error)
	CurrentUserExists(ctx context.Context) bool
	SignInWithEmailAndPassword(ctx context.Context, email, password string) (AuthUser, error)
	// SignUpWithEmailAndPassword creates the account, signs it in and stores
	// the profile.
	SignUpWithEmailAndPassword(ctx context.Context, user User, password string) error
	SendPasswordResetEmail(ctx context.Context, email string) error
	// ConfirmPasswordReset sets a new password using the code from the
	// reset email.
	ConfirmPasswordReset(ctx context.Context, code, newPassword string) error
	SignOut(ctx context.Context) error
	UserUID(ctx context.Context) (string, error)
}

// ProfileStore keeps the User profile for each uid.
type ProfileStore interface {
	SaveProfile(ctx context.Context, uid string, user User) error
	Profile(ctx context.Context, uid string) (User, error)
}

type accountError struct {
	msg    string
	status int
}

func (e *accountError) Error() string   { return e.msg }
func (e *accountError) HTTPStatus() int { return e.status }

var (
	ErrNotSignedIn        error = &accountError{"account: no user signed in", http.StatusUnauthorized}
	ErrInvalidCredentials error = &accountError{"account: invalid email or password", http.StatusUnauthorized}
	ErrEmailTaken         error = &accountError{"account: email already registered", http.StatusConflict}
	ErrUserNotFound       error = &accountError{"account: no user with that email", http.StatusNotFound}
	ErrInvalidResetCode   error = &accountError{"account: reset code is invalid or expired", http.StatusBadRequest}
)
