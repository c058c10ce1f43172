package account

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// DefaultIdentityToolkitURL is the Firebase Auth REST endpoint.
const DefaultIdentityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// FirebaseError is an identity toolkit error not mapped to a sentinel.
type FirebaseError struct {
	StatusCode int
	Message    string
}

func (e *FirebaseError) Error() string {
	return fmt.Sprintf("firebase auth: HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *FirebaseError) HTTPStatus() int { return http.StatusBadGateway }

// FirebaseAuthenticator signs shoppers in through the Firebase Auth REST API
// and keeps their profile in a ProfileStore.
type FirebaseAuthenticator struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	profiles ProfileStore
	session  *session
}

func NewFirebaseAuthenticator(baseURL, apiKey string, client *http.Client, profiles ProfileStore) *FirebaseAuthenticator {
	if baseURL == "" {
		baseURL = DefaultIdentityToolkitURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &FirebaseAuthenticator{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		client:   client,
		profiles: profiles,
		session:  newSession(),
	}
}

type passwordRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type oobCodeRequest struct {
	RequestType string `json:"requestType"`
	Email       string `json:"email"`
}

type resetPasswordRequest struct {
	OOBCode     string `json:"oobCode"`
	NewPassword string `json:"newPassword"`
}

type tokenResponse struct {
	LocalID   string `json:"localId"`
	Email     string `json:"email"`
	IDToken   string `json:"idToken"`
	ExpiresIn string `json:"expiresIn"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *FirebaseAuthenticator) SignInWithEmailAndPassword(ctx context.Context, email, password string) (AuthUser, error) {
	var resp tokenResponse
	err := a.call(ctx, "accounts:signInWithPassword", passwordRequest{email, password, true}, &resp)
	if errors.Is(err, ErrUserNotFound) {
		return AuthUser{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthUser{}, err
	}
	return a.startSession(resp)
}

func (a *FirebaseAuthenticator) SignUpWithEmailAndPassword(ctx context.Context, user User, password string) error {
	var resp tokenResponse
	if err := a.call(ctx, "accounts:signUp", passwordRequest{user.Email, password, true}, &resp); err != nil {
		return err
	}
	u, err := a.startSession(resp)
	if err != nil {
		return err
	}
	return a.profiles.SaveProfile(ctx, u.UID, user)
}

func (a *FirebaseAuthenticator) SendPasswordResetEmail(ctx context.Context, email string) error {
	return a.call(ctx, "accounts:sendOobCode", oobCodeRequest{RequestType: "PASSWORD_RESET", Email: email}, &struct{}{})
}

func (a *FirebaseAuthenticator) ConfirmPasswordReset(ctx context.Context, code, newPassword string) error {
	return a.call(ctx, "accounts:resetPassword", resetPasswordRequest{OOBCode: code, NewPassword: newPassword}, &struct{}{})
}

func (a *FirebaseAuthenticator) SignOut(ctx context.Context) error {
	a.session.clear()
	return nil
}

func (a *FirebaseAuthenticator) UserUID(ctx context.Context) (string, error) {
	u, err := a.session.get()
	if err != nil {
		return "", err
	}
	return u.UID, nil
}

func (a *FirebaseAuthenticator) CurrentUserExists(ctx context.Context) bool {
	_, err := a.session.get()
	return err == nil
}

func (a *FirebaseAuthenticator) CurrentUser(ctx context.Context) (User, error) {
	u, err := a.session.get()
	if err != nil {
		return User{}, err
	}
	return a.profiles.Profile(ctx, u.UID)
}

// startSession reads uid and expiry from the ID token. The signature was
// checked by Firebase; the token is only inspected here.
func (a *FirebaseAuthenticator) startSession(resp tokenResponse) (AuthUser, error) {
	claims := &jwt.StandardClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(resp.IDToken, claims); err != nil {
		return AuthUser{}, fmt.Errorf("firebase auth: id token: %w", err)
	}
	u := AuthUser{UID: resp.LocalID, Email: resp.Email, Token: resp.IDToken}
	if u.UID == "" {
		u.UID = claims.Subject
	}
	switch {
	case claims.ExpiresAt > 0:
		u.ExpiresAt = time.Unix(claims.ExpiresAt, 0)
	case resp.ExpiresIn != "":
		secs, err := strconv.Atoi(resp.ExpiresIn)
		if err == nil {
			u.ExpiresAt = a.session.now().Add(time.Duration(secs) * time.Second)
		}
	}
	a.session.set(u)
	return u, nil
}

func (a *FirebaseAuthenticator) call(ctx context.Context, method string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	target := a.baseURL + "/" + method + "?" + url.Values{"key": {a.apiKey}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		_ = json.Unmarshal(raw, &e)
		return firebaseError(resp.StatusCode, e.Error.Message)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("firebase auth: decode %s: %w", method, err)
	}
	return nil
}

// firebaseError maps identity toolkit error codes. Messages may carry a
// suffix such as "WEAK_PASSWORD : Password should be at least 6 characters".
func firebaseError(status int, message string) error {
	code, _, _ := strings.Cut(message, " ")
	switch code {
	case "EMAIL_NOT_FOUND":
		return ErrUserNotFound
	case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED":
		return ErrInvalidCredentials
	case "EMAIL_EXISTS":
		return ErrEmailTaken
	case "EXPIRED_OOB_CODE", "INVALID_OOB_CODE":
		return ErrInvalidResetCode
	}
	return &FirebaseError{StatusCode: status, Message: message}
}
