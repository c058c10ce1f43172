package account

import (
	"context"

	"github.com/georgemunganga/printa-storefront/internal/resource"
)

// Service is the login use cases.
type Service interface {
	GetCurrentUser(ctx context.Context) resource.Resource[User]
	CheckCurrentUser(ctx context.Context) bool
	SignIn(ctx context.Context, email, password string) resource.Resource[AuthUser]
	SignUp(ctx context.Context, user User, password string) resource.Resource[struct{}]
	ForgotPassword(ctx context.Context, email string) resource.Resource[struct{}]
	ResetPassword(ctx context.Context, code, newPassword string) resource.Resource[struct{}]
	SignOut(ctx context.Context) error
}

type service struct{ auth Authenticator }

func NewService(auth Authenticator) Service { return &service{auth: auth} }

func (s *service) GetCurrentUser(ctx context.Context) resource.Resource[User] {
	return resource.Of(s.auth.CurrentUser(ctx))
}

func (s *service) CheckCurrentUser(ctx context.Context) bool {
	return s.auth.CurrentUserExists(ctx)
}

func (s *service) SignIn(ctx context.Context, email, password string) resource.Resource[AuthUser] {
	return resource.Of(s.auth.SignInWithEmailAndPassword(ctx, email, password))
}

func (s *service) SignUp(ctx context.Context, user User, password string) resource.Resource[struct{}] {
	return resource.Of(struct{}{}, s.auth.SignUpWithEmailAndPassword(ctx, user, password))
}

func (s *service) ForgotPassword(ctx context.Context, email string) resource.Resource[struct{}] {
	return resource.Of(struct{}{}, s.auth.SendPasswordResetEmail(ctx, email))
}

func (s *service) ResetPassword(ctx context.Context, code, newPassword string) resource.Resource[struct{}] {
	return resource.Of(struct{}{}, s.auth.ConfirmPasswordReset(ctx, code, newPassword))
}

func (s *service) SignOut(ctx context.Context) error {
	return s.auth.SignOut(ctx)
}
