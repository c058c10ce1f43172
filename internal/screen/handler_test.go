package screen

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/printa-storefront/internal/modules/account"
	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/georgemunganga/printa-storefront/internal/resource"
)

func TestSearchEventStream(t *testing.T) {
	stub := &catalogStub{products: resource.Success([]catalog.Product{laptop})}
	r := chi.NewRouter()
	NewHandler(stub, &bagStub{}, &favoriteStub{}, &accountStub{}, nil).RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	resp, err := srv.Client().Get(srv.URL + "/api/v1/screens/search/events?q=laptop")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	text := string(body)
	loading := strings.Index(text, "event: loading\ndata: {\"status\":\"loading\"}")
	success := strings.Index(text, "event: success\ndata: {\"status\":\"success\"")
	require.GreaterOrEqual(t, loading, 0, text)
	require.Greater(t, success, loading, text)
	assert.Contains(t, text, `"title":"Laptop X200"`)
	assert.Equal(t, []any{"laptop"}, stub.called("SearchProduct"))
}

func TestProductEventStreamByCategory(t *testing.T) {
	stub := &catalogStub{products: resource.Success([]catalog.Product{laptop})}
	r := chi.NewRouter()
	NewHandler(stub, &bagStub{}, &favoriteStub{}, &accountStub{}, nil).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/screens/products/events?category=Electronics", nil))

	assert.Contains(t, rec.Body.String(), "event: success")
	assert.Equal(t, []any{"Electronics"}, stub.called("GetProductsByCategory"))
	assert.Empty(t, stub.called("GetProducts"))
}

func TestFavoritesEventStream(t *testing.T) {
	favs := &favoriteStub{favorites: []catalog.Product{laptop}}
	r := chi.NewRouter()
	NewHandler(&catalogStub{}, &bagStub{}, favs, &accountStub{}, nil).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/screens/favorites/events", nil))

	text := rec.Body.String()
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, text, "event: loading")
	assert.Less(t, strings.Index(text, "event: loading"), strings.Index(text, "event: success"), text)
	assert.Contains(t, text, `"title":"Laptop X200"`)
	assert.Len(t, favs.called("GetFavorites"), 1)
}

func TestProfileEventStreamEndsOnTerminal(t *testing.T) {
	user := account.User{Email: "test@example.com", Nickname: "Test User"}
	acc := &accountStub{user: resource.Success(user)}
	r := chi.NewRouter()
	NewHandler(&catalogStub{}, &bagStub{}, &favoriteStub{}, acc, nil).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/screens/profile/events", nil))

	text := rec.Body.String()
	assert.Equal(t, 1, strings.Count(text, "event: success"), text)
	assert.Contains(t, text, `"nickname":"Test User"`)
	assert.Len(t, acc.called("GetCurrentUser"), 1)
}
