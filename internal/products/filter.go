package products

import (
	"net/url"
	"strconv"
)

// DefaultLimit is the page size used when the URL does not carry one.
const DefaultLimit = 50

// Filter is the complete list-page state. It lives only in the URL query
// string: ParseFilter and Values form an exact decode/encode pair, so a
// round trip through a URL reproduces the identical state.
type Filter struct {
	Query    string
	Brand    string
	Category string
	MinPrice *float64
	MaxPrice *float64
	// InStock is tri-state: nil sends no stock filter upstream at all,
	// while a pointed-to value is forwarded verbatim. The API treats
	// in_stock=false as "only rows NOT in stock", so leaving it out and
	// sending false are different queries. ParseFilter always pins it;
	// hand-built filters such as the dashboard fetch leave it nil.
	InStock *bool
	Limit   int
	Offset  int
}

// InStockOnly reports whether the in-stock-only checkbox is on.
func (f Filter) InStockOnly() bool {
	return f.InStock != nil && *f.InStock
}

// ParseFilter reads filter state from page query parameters. Unparseable
// numerics fall back to their defaults.
func ParseFilter(v url.Values) Filter {
	f := Filter{
		Query:    v.Get("q"),
		Brand:    v.Get("brand"),
		Category: v.Get("category"),
		Limit:    DefaultLimit,
	}
	inStock := v.Get("in_stock") == "true"
	f.InStock = &inStock
	f.MinPrice = parsePrice(v.Get("min_price"))
	f.MaxPrice = parsePrice(v.Get("max_price"))
	if n, err := strconv.Atoi(v.Get("limit")); err == nil && n > 0 {
		f.Limit = n
	}
	if n, err := strconv.Atoi(v.Get("offset")); err == nil && n > 0 {
		f.Offset = n
	}
	return f
}

func parsePrice(s string) *float64 {
	if s == "" {
		return nil
	}
	p, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &p
}

// Values encodes exactly the non-default fields back into query parameters.
func (f Filter) Values() url.Values {
	v := url.Values{}
	if f.Query != "" {
		v.Set("q", f.Query)
	}
	if f.Brand != "" {
		v.Set("brand", f.Brand)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.MinPrice != nil {
		v.Set("min_price", formatPrice(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		v.Set("max_price", formatPrice(*f.MaxPrice))
	}
	if f.InStockOnly() {
		v.Set("in_stock", "true")
	}
	if f.Limit != DefaultLimit {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset != 0 {
		v.Set("offset", strconv.Itoa(f.Offset))
	}
	return v
}

// APIQuery builds the upstream /products query. Unlike Values it always
// carries limit and offset, and it forwards in_stock whenever the filter
// pins it, false included. A nil InStock emits no in_stock parameter, so
// unfiltered fetches see the whole catalog.
func (f Filter) APIQuery() url.Values {
	v := url.Values{}
	if f.Query != "" {
		v.Set("q", f.Query)
	}
	if f.Brand != "" {
		v.Set("brand", f.Brand)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.MinPrice != nil {
		v.Set("min_price", formatPrice(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		v.Set("max_price", formatPrice(*f.MaxPrice))
	}
	if f.InStock != nil {
		v.Set("in_stock", strconv.FormatBool(*f.InStock))
	}
	v.Set("limit", strconv.Itoa(f.Limit))
	v.Set("offset", strconv.Itoa(f.Offset))
	return v
}

// PageURL is the link target for a pagination control. Pagination links
// always pin limit and offset so the page is reproducible.
func (f Filter) PageURL(offset int) string {
	g := f
	g.Offset = 0
	v := g.Values()
	v.Set("limit", strconv.Itoa(f.Limit))
	v.Set("offset", strconv.Itoa(offset))
	return "/products?" + v.Encode()
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// HasNext approximates "more pages exist" as "this page came back full".
// A final page of exactly limit items therefore reports a false positive;
// the API does not return a total count to do better with.
func HasNext(pageLen, limit int) bool {
	return pageLen == limit
}

func HasPrev(offset int) bool {
	return offset > 0
}

// DistinctBrands returns the distinct non-empty brands on the current page,
// in first-seen order. Options are scoped to the loaded page, not the whole
// catalog.
func DistinctBrands(list []Product) []string {
	return distinct(list, func(p Product) string { return p.Brand })
}

// DistinctCategories is the category counterpart of DistinctBrands.
func DistinctCategories(list []Product) []string {
	return distinct(list, func(p Product) string { return p.Category })
}

func distinct(list []Product, field func(Product) string) []string {
	seen := make(map[string]bool, len(list))
	var out []string
	for _, p := range list {
		s := field(p)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
