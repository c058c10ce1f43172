package screen

import (
	"context"
	"log/slog"

	"github.com/georgemunganga/printa-storefront/internal/modules/account"
	"github.com/georgemunganga/printa-storefront/internal/modules/bag"
	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/georgemunganga/printa-storefront/internal/resource"
)

// Profile shows the signed-in shopper. CurrentUser is Loading until the
// first lookup completes.
type Profile struct {
	*scope
	account account.Service

	CurrentUser *Live[resource.Resource[account.User]]
}

func NewProfile(ctx context.Context, logger *slog.Logger, a account.Service) *Profile {
	p := &Profile{
		scope:       newScope(ctx, logger, "profile"),
		account:     a,
		CurrentUser: NewLive(resource.Loading[account.User]()),
	}
	p.GetCurrentUser()
	return p
}

func (p *Profile) GetCurrentUser() {
	run(p.scope, p.CurrentUser, "get_current_user", p.account.GetCurrentUser)
}

func (p *Profile) SignOut() {
	p.fire("sign_out", p.account.SignOut)
}

// PaymentSuccess empties the bag once checkout went through.
type PaymentSuccess struct {
	*scope
	bag bag.Service

	Result *Live[resource.Resource[catalog.CRUDResponse]]
}

func NewPaymentSuccess(ctx context.Context, logger *slog.Logger, b bag.Service) *PaymentSuccess {
	return &PaymentSuccess{
		scope:  newScope(ctx, logger, "payment_success"),
		bag:    b,
		Result: NewLive(resource.Loading[catalog.CRUDResponse]()),
	}
}

func (p *PaymentSuccess) ClearBag() {
	run(p.scope, p.Result, "clear_bag", p.bag.ClearBag)
}
