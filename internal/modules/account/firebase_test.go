package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/printa-storefront/internal/platform/httpx"
)

func idToken(t *testing.T, uid string, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.StandardClaims{
		Subject:   uid,
		ExpiresAt: exp.Unix(),
	}).SignedString([]byte("firebase-signs-this"))
	require.NoError(t, err)
	return token
}

type identityToolkit struct {
	t        *testing.T
	requests map[string]map[string]any
	fail     map[string]string
	exp      time.Time
}

func (f *identityToolkit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	assert.Equal(f.t, "api-key", r.URL.Query().Get("key"))
	method := r.URL.Path[len("/v1/"):]
	var body map[string]any
	assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&body))
	f.requests[method] = body

	if msg, ok := f.fail[method]; ok {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"` + msg + `"}}`))
		return
	}
	switch method {
	case "accounts:signInWithPassword", "accounts:signUp":
		_ = json.NewEncoder(w).Encode(map[string]string{
			"localId":   "fb-uid",
			"email":     body["email"].(string),
			"idToken":   idToken(f.t, "fb-uid", f.exp),
			"expiresIn": "3600",
		})
	case "accounts:resetPassword":
		_, _ = w.Write([]byte(`{"email":"test@example.com","requestType":"PASSWORD_RESET"}`))
	default:
		_, _ = w.Write([]byte(`{"email":"` + body["email"].(string) + `"}`))
	}
}

func newFirebase(t *testing.T) (*FirebaseAuthenticator, *identityToolkit, *MemoryStore) {
	t.Helper()
	fake := &identityToolkit{t: t, requests: map[string]map[string]any{}, fail: map[string]string{}, exp: time.Now().Add(time.Hour)}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	profiles := NewMemoryStore()
	return NewFirebaseAuthenticator(srv.URL+"/v1", "api-key", srv.Client(), profiles), fake, profiles
}

func TestFirebaseSignIn(t *testing.T) {
	auth, fake, _ := newFirebase(t)
	ctx := context.Background()

	u, err := auth.SignInWithEmailAndPassword(ctx, "test@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, "fb-uid", u.UID)
	assert.Equal(t, fake.exp.Unix(), u.ExpiresAt.Unix())
	assert.Equal(t, map[string]any{"email": "test@example.com", "password": "password123", "returnSecureToken": true},
		fake.requests["accounts:signInWithPassword"])
	uid, err := auth.UserUID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fb-uid", uid)
}

func TestFirebaseSignUpStoresProfile(t *testing.T) {
	auth, _, profiles := newFirebase(t)
	ctx := context.Background()

	require.NoError(t, auth.SignUpWithEmailAndPassword(ctx, testUser, "password123"))

	stored, err := profiles.Profile(ctx, "fb-uid")
	require.NoError(t, err)
	assert.Equal(t, testUser, stored)
	current, err := auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, testUser, current)
}

func TestFirebaseErrorMapping(t *testing.T) {
	auth, fake, _ := newFirebase(t)
	ctx := context.Background()

	fake.fail["accounts:signInWithPassword"] = "INVALID_LOGIN_CREDENTIALS"
	_, err := auth.SignInWithEmailAndPassword(ctx, "a@b.c", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	fake.fail["accounts:signInWithPassword"] = "EMAIL_NOT_FOUND"
	_, err = auth.SignInWithEmailAndPassword(ctx, "a@b.c", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	fake.fail["accounts:signUp"] = "EMAIL_EXISTS"
	assert.ErrorIs(t, auth.SignUpWithEmailAndPassword(ctx, testUser, "password123"), ErrEmailTaken)

	fake.fail["accounts:signUp"] = "WEAK_PASSWORD : Password should be at least 6 characters"
	err = auth.SignUpWithEmailAndPassword(ctx, testUser, "x")
	var fbErr *FirebaseError
	require.ErrorAs(t, err, &fbErr)
	assert.Equal(t, http.StatusBadRequest, fbErr.StatusCode)
	assert.Equal(t, http.StatusBadGateway, httpx.StatusFor(err))

	fake.fail["accounts:sendOobCode"] = "EMAIL_NOT_FOUND"
	assert.ErrorIs(t, auth.SendPasswordResetEmail(ctx, "a@b.c"), ErrUserNotFound)
	assert.False(t, auth.CurrentUserExists(ctx))
}

func TestFirebasePasswordReset(t *testing.T) {
	auth, fake, _ := newFirebase(t)

	require.NoError(t, auth.SendPasswordResetEmail(context.Background(), "test@example.com"))

	assert.Equal(t, map[string]any{"requestType": "PASSWORD_RESET", "email": "test@example.com"},
		fake.requests["accounts:sendOobCode"])
}

func TestFirebaseConfirmPasswordReset(t *testing.T) {
	auth, fake, _ := newFirebase(t)
	ctx := context.Background()

	require.NoError(t, auth.ConfirmPasswordReset(ctx, "oob-code", "newpassword"))
	assert.Equal(t, map[string]any{"oobCode": "oob-code", "newPassword": "newpassword"},
		fake.requests["accounts:resetPassword"])

	fake.fail["accounts:resetPassword"] = "EXPIRED_OOB_CODE"
	assert.ErrorIs(t, auth.ConfirmPasswordReset(ctx, "oob-code", "newpassword"), ErrInvalidResetCode)
	fake.fail["accounts:resetPassword"] = "INVALID_OOB_CODE"
	assert.ErrorIs(t, auth.ConfirmPasswordReset(ctx, "oob-code", "newpassword"), ErrInvalidResetCode)
}

func TestFirebaseSignOut(t *testing.T) {
	auth, _, _ := newFirebase(t)
	ctx := context.Background()
	_, err := auth.SignInWithEmailAndPassword(ctx, "test@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, auth.SignOut(ctx))

	assert.False(t, auth.CurrentUserExists(ctx))
	_, err = auth.UserUID(ctx)
	assert.ErrorIs(t, err, ErrNotSignedIn)
}
