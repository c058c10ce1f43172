package account

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Credential is a locally registered login.
type Credential struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// CredentialStore persists credentials for LocalAuthenticator.
type CredentialStore interface {
	// CreateCredential returns ErrEmailTaken when the email is registered.
	CreateCredential(ctx context.Context, c Credential) error
	// CredentialByEmail returns ErrUserNotFound when nothing matches.
	CredentialByEmail(ctx context.Context, email string) (Credential, error)
	// UpdatePasswordHash returns ErrUserNotFound for an unknown id.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

// Mailer delivers password reset tokens.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// LogMailer stands in for mail delivery during development. The reset code
// is only written at debug level.
type LogMailer struct{ Logger *slog.Logger }

func (m LogMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "password reset requested", slog.String("email", email))
	logger.DebugContext(ctx, "password reset code", slog.String("email", email), slog.String("code", token))
	return nil
}

const (
	localSessionTTL = 24 * time.Hour
	resetCodeTTL    = time.Hour

	resetAudience = "password-reset"
)

// LocalAuthenticator signs shoppers in against a CredentialStore with bcrypt
// password hashes and HS256 session tokens. It needs no network.
type LocalAuthenticator struct {
	credentials CredentialStore
	profiles    ProfileStore
	mailer      Mailer
	secret      []byte
	session     *session
}

func NewLocalAuthenticator(credentials CredentialStore, profiles ProfileStore, mailer Mailer, secret string) *LocalAuthenticator {
	return &LocalAuthenticator{
		credentials: credentials,
		profiles:    profiles,
		mailer:      mailer,
		secret:      []byte(secret),
		session:     newSession(),
	}
}

func normalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

func (a *LocalAuthenticator) SignInWithEmailAndPassword(ctx context.Context, email, password string) (AuthUser, error) {
	cred, err := a.credentials.CredentialByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, ErrUserNotFound) {
		return AuthUser{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthUser{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return AuthUser{}, ErrInvalidCredentials
	}
	return a.startSession(cred)
}

func (a *LocalAuthenticator) startSession(cred Credential) (AuthUser, error) {
	now := a.session.now()
	expiresAt := now.Add(localSessionTTL)
	claims := &jwt.StandardClaims{
		Subject:   cred.ID.String(),
		IssuedAt:  now.Unix(),
		ExpiresAt: expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return AuthUser{}, err
	}
	u := AuthUser{UID: cred.ID.String(), Email: cred.Email, Token: token, ExpiresAt: time.Unix(expiresAt.Unix(), 0)}
	a.session.set(u)
	return u, nil
}

func (a *LocalAuthenticator) SignUpWithEmailAndPassword(ctx context.Context, user User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Email = normalizeEmail(user.Email)
	cred := Credential{ID: uuid.New(), Email: user.Email, PasswordHash: string(hash), CreatedAt: time.Now().UTC()}
	if err := a.credentials.CreateCredential(ctx, cred); err != nil {
		return err
	}
	if _, err := a.startSession(cred); err != nil {
		return err
	}
	return a.profiles.SaveProfile(ctx, cred.ID.String(), user)
}

// SendPasswordResetEmail mails a signed reset code. The code is bound to the
// current password hash, so it stops working once the password changes.
func (a *LocalAuthenticator) SendPasswordResetEmail(ctx context.Context, email string) error {
	cred, err := a.credentials.CredentialByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	now := a.session.now()
	claims := &jwt.StandardClaims{
		Id:        uuid.NewString(),
		Subject:   cred.Email,
		Audience:  resetAudience,
		Issuer:    hashFingerprint(cred.PasswordHash),
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(resetCodeTTL).Unix(),
	}
	code, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return err
	}
	return a.mailer.SendPasswordReset(ctx, cred.Email, code)
}

func (a *LocalAuthenticator) ConfirmPasswordReset(ctx context.Context, code, newPassword string) error {
	claims := &jwt.StandardClaims{}
	if _, err := jwt.ParseWithClaims(code, claims, a.keyFunc); err != nil {
		return ErrInvalidResetCode
	}
	if !claims.VerifyAudience(resetAudience, true) {
		return ErrInvalidResetCode
	}
	cred, err := a.credentials.CredentialByEmail(ctx, claims.Subject)
	if errors.Is(err, ErrUserNotFound) {
		return ErrInvalidResetCode
	}
	if err != nil {
		return err
	}
	if claims.Issuer != hashFingerprint(cred.PasswordHash) {
		return ErrInvalidResetCode
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return a.credentials.UpdatePasswordHash(ctx, cred.ID, string(hash))
}

func hashFingerprint(hash string) string {
	sum := sha256.Sum256([]byte(hash))
	return hex.EncodeToString(sum[:8])
}

func (a *LocalAuthenticator) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return a.secret, nil
}

func (a *LocalAuthenticator) SignOut(ctx context.Context) error {
	a.session.clear()
	return nil
}

// UserUID returns the uid of the signed-in user after re-verifying the
// session token.
func (a *LocalAuthenticator) UserUID(ctx context.Context) (string, error) {
	u, err := a.session.get()
	if err != nil {
		return "", err
	}
	claims := &jwt.StandardClaims{}
	_, err = jwt.ParseWithClaims(u.Token, claims, a.keyFunc)
	if err != nil {
		a.session.clear()
		return "", ErrNotSignedIn
	}
	return claims.Subject, nil
}

func (a *LocalAuthenticator) CurrentUserExists(ctx context.Context) bool {
	_, err := a.UserUID(ctx)
	return err == nil
}

func (a *LocalAuthenticator) CurrentUser(ctx context.Context) (User, error) {
	uid, err := a.UserUID(ctx)
	if err != nil {
		return User{}, err
	}
	return a.profiles.Profile(ctx, uid)
}
