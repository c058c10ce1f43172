package screen

import (
	"context"
	"log/slog"

	"github.com/georgemunganga/printa-storefront/internal/modules/account"
	"github.com/georgemunganga/printa-storefront/internal/resource"
)

type SignIn struct {
	*scope
	account account.Service

	Result *Live[resource.Resource[account.AuthUser]]
}

func NewSignIn(ctx context.Context, logger *slog.Logger, a account.Service) *SignIn {
	return &SignIn{
		scope:   newScope(ctx, logger, "sign_in"),
		account: a,
		Result:  NewLive(resource.Loading[account.AuthUser]()),
	}
}

func (s *SignIn) SignInWithEmailAndPassword(email, password string) {
	run(s.scope, s.Result, "sign_in", func(ctx context.Context) resource.Resource[account.AuthUser] {
		return s.account.SignIn(ctx, email, password)
	})
}

type SignUp struct {
	*scope
	account account.Service

	Result            *Live[resource.Resource[struct{}]]
	CurrentUserExists *Live[bool]
}

func NewSignUp(ctx context.Context, logger *slog.Logger, a account.Service) *SignUp {
	return &SignUp{
		scope:             newScope(ctx, logger, "sign_up"),
		account:           a,
		Result:            NewLive(resource.Loading[struct{}]()),
		CurrentUserExists: NewLive(false),
	}
}

func (s *SignUp) SignUpWithEmailAndPassword(user account.User, password string) {
	run(s.scope, s.Result, "sign_up", func(ctx context.Context) resource.Resource[struct{}] {
		return s.account.SignUp(ctx, user, password)
	})
}

// CheckCurrentUser publishes whether a shopper is already signed in.
func (s *SignUp) CheckCurrentUser() {
	s.launch(func(ctx context.Context) {
		s.CurrentUserExists.Post(s.account.CheckCurrentUser(ctx))
	})
}

type ForgotPassword struct {
	*scope
	account account.Service

	Result *Live[resource.Resource[struct{}]]
}

func NewForgotPassword(ctx context.Context, logger *slog.Logger, a account.Service) *ForgotPassword {
	return &ForgotPassword{
		scope:   newScope(ctx, logger, "forgot_password"),
		account: a,
		Result:  NewLive(resource.Loading[struct{}]()),
	}
}

func (s *ForgotPassword) SendPasswordResetEmail(email string) {
	run(s.scope, s.Result, "send_password_reset_email", func(ctx context.Context) resource.Resource[struct{}] {
		return s.account.ForgotPassword(ctx, email)
	})
}
