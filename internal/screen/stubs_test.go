package screen

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/georgemunganga/printa-storefront/internal/modules/account"
	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/georgemunganga/printa-storefront/internal/resource"
)

// recorder collects call names from stubs used across goroutines.
type recorder struct {
	mu    sync.Mutex
	calls []string
	args  []any
}

func (r *recorder) record(call string, arg any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
	r.args = append(r.args, arg)
}

func (r *recorder) called(call string) []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []any
	for i, c := range r.calls {
		if c == call {
			out = append(out, r.args[i])
		}
	}
	return out
}

type catalogStub struct {
	recorder
	products   resource.Resource[[]catalog.Product]
	categories resource.Resource[[]string]
}

func (s *catalogStub) GetProducts(ctx context.Context) resource.Resource[[]catalog.Product] {
	s.record("GetProducts", nil)
	return s.products
}

func (s *catalogStub) GetSaleProducts(ctx context.Context) resource.Resource[[]catalog.Product] {
	s.record("GetSaleProducts", nil)
	return s.products
}

func (s *catalogStub) GetProductsByCategory(ctx context.Context, category string) resource.Resource[[]catalog.Product] {
	s.record("GetProductsByCategory", category)
	return s.products
}

func (s *catalogStub) SearchProduct(ctx context.Context, query string) resource.Resource[[]catalog.Product] {
	s.record("SearchProduct", query)
	return s.products
}

func (s *catalogStub) GetCategories(ctx context.Context) resource.Resource[[]string] {
	s.record("GetCategories", nil)
	return s.categories
}

type bagStub struct {
	recorder
	crud     resource.Resource[catalog.CRUDResponse]
	count    resource.Resource[int]
	products resource.Resource[[]catalog.Product]
}

func (s *bagStub) AddToBag(ctx context.Context, p catalog.Product) resource.Resource[catalog.CRUDResponse] {
	s.record("AddToBag", p)
	return s.crud
}

func (s *bagStub) DeleteFromBag(ctx context.Context, id int) resource.Resource[catalog.CRUDResponse] {
	s.record("DeleteFromBag", id)
	return s.crud
}

func (s *bagStub) ClearBag(ctx context.Context) resource.Resource[catalog.CRUDResponse] {
	s.record("ClearBag", nil)
	return s.crud
}

func (s *bagStub) GetBagProductsCount(ctx context.Context) resource.Resource[int] {
	s.record("GetBagProductsCount", nil)
	return s.count
}

func (s *bagStub) GetBagProducts(ctx context.Context) resource.Resource[[]catalog.Product] {
	s.record("GetBagProducts", nil)
	return s.products
}

type favoriteStub struct {
	recorder
	favorites []catalog.Product
	err       error
}

func (s *favoriteStub) GetFavorites(ctx context.Context) resource.Resource[[]catalog.Product] {
	s.record("GetFavorites", nil)
	s.mu.Lock()
	defer s.mu.Unlock()
	return resource.Success(append([]catalog.Product{}, s.favorites...))
}

func (s *favoriteStub) AddToFavorites(ctx context.Context, p catalog.Product) error {
	s.record("AddToFavorites", p)
	return s.err
}

func (s *favoriteStub) DeleteFromFavorites(ctx context.Context, id int) error {
	s.record("DeleteFromFavorites", id)
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.favorites[:0]
	for _, p := range s.favorites {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.favorites = kept
	return nil
}

func (s *favoriteStub) ClearFavorites(ctx context.Context) error {
	s.record("ClearFavorites", nil)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = nil
	return s.err
}

type accountStub struct {
	recorder
	user     resource.Resource[account.User]
	authUser resource.Resource[account.AuthUser]
	done     resource.Resource[struct{}]
	exists   bool
	// release, when set, blocks GetCurrentUser until closed.
	release chan struct{}
}

func (s *accountStub) GetCurrentUser(ctx context.Context) resource.Resource[account.User] {
	if s.release != nil {
		<-s.release
	}
	s.record("GetCurrentUser", nil)
	return s.user
}

func (s *accountStub) CheckCurrentUser(ctx context.Context) bool { return s.exists }

func (s *accountStub) SignIn(ctx context.Context, email, password string) resource.Resource[account.AuthUser] {
	s.record("SignIn", email+":"+password)
	return s.authUser
}

func (s *accountStub) SignUp(ctx context.Context, user account.User, password string) resource.Resource[struct{}] {
	s.record("SignUp", user)
	return s.done
}

func (s *accountStub) ForgotPassword(ctx context.Context, email string) resource.Resource[struct{}] {
	s.record("ForgotPassword", email)
	return s.done
}

func (s *accountStub) ResetPassword(ctx context.Context, code, newPassword string) resource.Resource[struct{}] {
	s.record("ResetPassword", code)
	return s.done
}

func (s *accountStub) SignOut(ctx context.Context) error {
	s.record("SignOut", nil)
	return nil
}

// next reads one emission or fails after a second.
func next[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("no emission")
		var zero T
		return zero
	}
}
