package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogRouter(remote *fakeRemote) http.Handler {
	r := chi.NewRouter()
	NewHandler(NewService(NewRepository(remote, &fakeLocal{}, Pricing{}))).RegisterRoutes(r)
	return r
}

func TestHandlerCategoryProducts(t *testing.T) {
	remote := newFakeRemote()
	remote.products = []Product{product(1, "Product1", SaleStateActive, 100.0)}
	router := newCatalogRouter(remote)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/categories/Electronics/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Electronics", remote.lastCategory)
	var body struct {
		Status string    `json:"status"`
		Data   []Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Product1", body.Data[0].Title)
	assert.Nil(t, body.Data[0].SalePrice)
}

func TestHandlerSearchUsesQueryParameter(t *testing.T) {
	remote := newFakeRemote()
	router := newCatalogRouter(remote)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/search?q=laptop", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "laptop", remote.lastQuery)
}

func TestHandlerUpstreamFault(t *testing.T) {
	remote := newFakeRemote()
	remote.err = &HTTPError{StatusCode: http.StatusInternalServerError, Message: "Server error occurred"}
	router := newCatalogRouter(remote)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/categories", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"shop api: HTTP 500: Server error occurred"}`, rec.Body.String())
}
