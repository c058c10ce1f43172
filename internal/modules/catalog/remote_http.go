package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/georgemunganga/printa-storefront/internal/platform/httpx"
)

// ErrNoShopper is returned by bag calls made without a user id in the context.
var ErrNoShopper = fmt.Errorf("catalog: bag call without a signed-in user: %w", httpx.ErrUnauthorized)

// HTTPError is returned when the shop API answers with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("shop api: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("shop api: HTTP %d: %s", e.StatusCode, e.Message)
}

// HTTPStatus reports upstream failures to our own clients as 502.
func (e *HTTPError) HTTPStatus() int { return http.StatusBadGateway }

type productsResponse struct {
	Products []Product `json:"products"`
	Status   int       `json:"status"`
	Message  string    `json:"message"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
	Status     int      `json:"status"`
	Message    string   `json:"message"`
}

type countResponse struct {
	Count   int    `json:"count"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type addToBagRequest struct {
	UserID    string `json:"userId"`
	ProductID int    `json:"productId"`
}

type deleteFromBagRequest struct {
	ID int `json:"id"`
}

type clearBagRequest struct {
	UserID string `json:"userId"`
}

type httpRemote struct {
	baseURL string
	store   string
	client  *http.Client
}

// NewHTTPRemote returns a RemoteDataSource talking to the shop API at
// baseURL. store is sent in the "store" header the API uses to pick a
// catalogue.
func NewHTTPRemote(baseURL, store string, client *http.Client) RemoteDataSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpRemote{baseURL: strings.TrimRight(baseURL, "/"), store: store, client: client}
}

func (r *httpRemote) GetProducts(ctx context.Context) ([]Product, error) {
	var resp productsResponse
	if err := r.get(ctx, "get_products", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (r *httpRemote) GetSaleProducts(ctx context.Context) ([]Product, error) {
	var resp productsResponse
	if err := r.get(ctx, "get_sale_products", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (r *httpRemote) GetProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	var resp productsResponse
	if err := r.get(ctx, "get_products_by_category", url.Values{"category": {category}}, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (r *httpRemote) SearchProduct(ctx context.Context, query string) ([]Product, error) {
	var resp productsResponse
	if err := r.get(ctx, "search_product", url.Values{"query": {query}}, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (r *httpRemote) GetCategories(ctx context.Context) ([]string, error) {
	var resp categoriesResponse
	if err := r.get(ctx, "get_categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

func (r *httpRemote) AddToBag(ctx context.Context, p Product) (CRUDResponse, error) {
	uid := UserIDFromContext(ctx)
	if uid == "" {
		return CRUDResponse{}, ErrNoShopper
	}
	var resp CRUDResponse
	err := r.post(ctx, "add_to_bag", addToBagRequest{UserID: uid, ProductID: p.ID}, &resp)
	return resp, err
}

func (r *httpRemote) DeleteFromBag(ctx context.Context, id int) (CRUDResponse, error) {
	if UserIDFromContext(ctx) == "" {
		return CRUDResponse{}, ErrNoShopper
	}
	var resp CRUDResponse
	err := r.post(ctx, "delete_from_bag", deleteFromBagRequest{ID: id}, &resp)
	return resp, err
}

func (r *httpRemote) ClearBag(ctx context.Context) (CRUDResponse, error) {
	uid := UserIDFromContext(ctx)
	if uid == "" {
		return CRUDResponse{}, ErrNoShopper
	}
	var resp CRUDResponse
	err := r.post(ctx, "clear_bag", clearBagRequest{UserID: uid}, &resp)
	return resp, err
}

func (r *httpRemote) GetBagProductsCount(ctx context.Context) (int, error) {
	uid := UserIDFromContext(ctx)
	if uid == "" {
		return 0, ErrNoShopper
	}
	var resp countResponse
	if err := r.get(ctx, "get_bag_products_count", url.Values{"userId": {uid}}, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (r *httpRemote) GetBagProducts(ctx context.Context) ([]Product, error) {
	uid := UserIDFromContext(ctx)
	if uid == "" {
		return nil, ErrNoShopper
	}
	var resp productsResponse
	if err := r.get(ctx, "get_bag_products", url.Values{"userId": {uid}}, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (r *httpRemote) get(ctx context.Context, path string, query url.Values, out any) error {
	target := r.baseURL + "/" + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	return r.do(req, out)
}

func (r *httpRemote) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/"+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return r.do(req, out)
}

func (r *httpRemote) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if r.store != "" {
		req.Header.Set("store", r.store)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &body)
		if body.Message == "" {
			body.Message = strings.TrimSpace(string(raw))
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: body.Message}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("shop api: decode %s: %w", req.URL.Path, err)
	}
	return nil
}
