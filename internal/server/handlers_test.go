package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thisAbdU/amazon-pipeline/internal/products"
)

type fakeAPI struct {
	list       *products.ListResponse
	listErr    error
	byASIN     map[string]*products.Product
	lastFilter products.Filter
}

func (f *fakeAPI) List(_ context.Context, fl products.Filter) (*products.ListResponse, error) {
	f.lastFilter = fl
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeAPI) Get(_ context.Context, asin string) (*products.Product, error) {
	if p, ok := f.byASIN[asin]; ok {
		return p, nil
	}
	return nil, products.ErrNotFound
}

func newTestRouter(t *testing.T, api *fakeAPI) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return New(Options{
		Client:        api,
		PublicAPIBase: "http://localhost:8000",
		TemplateGlob:  "../../web/templates/*.html",
		StaticDir:     "../../web/static",
	})
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func fptr(v float64) *float64 { return &v }

func testProduct(asin, title string, price float64, availability string) products.Product {
	return products.Product{
		ASIN:  asin,
		Title: title,
		LatestOffer: &products.Offer{
			Price:        fptr(price),
			Currency:     "USD",
			Availability: availability,
			Seller:       "Amazon",
			FetchedAt:    time.Now().Add(-2 * time.Hour),
		},
	}
}

func TestDashboardRendersKPIs(t *testing.T) {
	api := &fakeAPI{list: &products.ListResponse{
		Products: []products.Product{
			testProduct("B01", "Widget", 10, "In Stock"),
			testProduct("B02", "Gadget", 20, "Out of Stock"),
		},
		Limit: 100,
	}}
	w := get(t, newTestRouter(t, api), "/")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if api.lastFilter.Limit != 100 {
		t.Fatalf("dashboard fetched with limit %d, want 100", api.lastFilter.Limit)
	}
	if api.lastFilter.InStock != nil {
		t.Fatalf("dashboard fetch pinned in_stock=%v; KPIs must be derived from the unfiltered catalog", *api.lastFilter.InStock)
	}
	body := w.Body.String()
	for _, want := range []string{
		"Total Products",
		"$15.00", // mean of 10 and 20
		"$20.00", // upper median of [10 20]
		"Illustrative series",
		"Recently Updated",
		"Widget",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard body missing %q", want)
		}
	}
}

func TestDashboardFetchErrorShowsRetryPage(t *testing.T) {
	api := &fakeAPI{listErr: errors.New("connection refused")}
	w := get(t, newTestRouter(t, api), "/")

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Something went wrong") || !strings.Contains(body, "Retry") {
		t.Fatalf("error page missing retry affordance: %s", body)
	}
}

func TestProductsPassesFilterVerbatim(t *testing.T) {
	api := &fakeAPI{list: &products.ListResponse{Products: []products.Product{
		testProduct("B01", "Widget", 10, "In Stock"),
	}}}
	w := get(t, newTestRouter(t, api), "/products?q=foo&brand=Acme&in_stock=true&limit=25&offset=25")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	f := api.lastFilter
	if f.Query != "foo" || f.Brand != "Acme" || !f.InStockOnly() || f.Limit != 25 || f.Offset != 25 {
		t.Fatalf("filter not passed through: %+v", f)
	}
}

func TestProductsEmptyState(t *testing.T) {
	api := &fakeAPI{list: &products.ListResponse{}}
	w := get(t, newTestRouter(t, api), "/products?q=nomatch")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (empty is not an error)", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "No products found") || !strings.Contains(body, "Reset Filters") {
		t.Fatalf("empty state missing: %s", body)
	}
}

func TestProductsPaginationLinks(t *testing.T) {
	page := make([]products.Product, products.DefaultLimit)
	for i := range page {
		page[i] = testProduct("B"+strings.Repeat("0", 2)+string(rune('A'+i%26)), "Item", 5, "In Stock")
	}
	api := &fakeAPI{list: &products.ListResponse{Products: page}}
	w := get(t, newTestRouter(t, api), "/products?offset=50")

	body := w.Body.String()
	// Full page: next enabled at offset 100, prev back to 0.
	if !strings.Contains(body, "offset=100") {
		t.Errorf("next link missing offset=100")
	}
	if !strings.Contains(body, "offset=0") {
		t.Errorf("prev link missing offset=0")
	}
	if !strings.Contains(body, "Showing 51–100") {
		t.Errorf("result count line missing, body has: %s", firstLineWith(body, "Showing"))
	}
}

func TestProductDetailRenders(t *testing.T) {
	p := testProduct("B000TEST01", "Noise Cancelling Headphones", 199.99, "In Stock")
	p.CreatedAt = time.Date(2025, time.January, 2, 9, 0, 0, 0, time.UTC)
	p.UpdatedAt = time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	p.Sparkline = []products.OfferSnapshot{
		{Price: 210, Currency: "USD", Availability: "In Stock", FetchedAt: p.CreatedAt},
		{Price: 199.99, Currency: "USD", Availability: "In Stock", ChangeType: "decrease", FetchedAt: p.UpdatedAt},
	}
	api := &fakeAPI{byASIN: map[string]*products.Product{"B000TEST01": &p}}
	w := get(t, newTestRouter(t, api), "/products/B000TEST01")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		"Noise Cancelling Headphones",
		"B000TEST01",
		"$199.99",
		"Additional Details",
		"Jan 2, 2025",
		"decrease",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("detail body missing %q", want)
		}
	}
}

func TestProductDetailNotFound(t *testing.T) {
	api := &fakeAPI{}
	w := get(t, newTestRouter(t, api), "/products/B00MISSING")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Product not found") {
		t.Fatal("not-found page missing")
	}
}

func TestHealthz(t *testing.T) {
	api := &fakeAPI{}
	w := get(t, newTestRouter(t, api), "/healthz")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("healthz body = %s", w.Body.String())
	}
}

func TestRequestIDHeader(t *testing.T) {
	api := &fakeAPI{}
	w := get(t, newTestRouter(t, api), "/healthz")
	if w.Header().Get("X-Request-Id") == "" {
		t.Fatal("X-Request-Id header not set")
	}

	r := newTestRouter(t, api)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "upstream-id")
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	if got := w2.Header().Get("X-Request-Id"); got != "upstream-id" {
		t.Fatalf("inbound request id not kept: %q", got)
	}
}

func firstLineWith(body, substr string) string {
	for _, line := range strings.Split(body, "\n") {
		if strings.Contains(line, substr) {
			return strings.TrimSpace(line)
		}
	}
	return "(none)"
}
