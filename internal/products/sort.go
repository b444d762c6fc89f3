package products

import (
	"sort"
	"strconv"
	"strings"
)

// Sortable table columns. Anything else leaves the page in API order.
const (
	SortTitle = "title"
	SortASIN  = "asin"
	SortPrice = "price"
)

// SortPage re-orders one already-fetched page in place. Sorting never
// requests a different order from the API; it only rearranges what is on
// screen. Products missing the sort value sink to the end regardless of
// direction.
//
// Price intentionally compares the stringified price, so "9.99" sorts after
// "19.99", reproducing the upstream table's behavior verbatim.
func SortPage(list []Product, column string, desc bool) {
	if column != SortTitle && column != SortASIN && column != SortPrice {
		return
	}
	key := func(p Product) (string, bool) {
		switch column {
		case SortTitle:
			return p.Title, true
		case SortASIN:
			return p.ASIN, true
		case SortPrice:
			if p.LatestOffer == nil || p.LatestOffer.Price == nil {
				return "", false
			}
			return strconv.FormatFloat(*p.LatestOffer.Price, 'f', -1, 64), true
		default:
			return "", false
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		a, aok := key(list[i])
		b, bok := key(list[j])
		if !aok {
			return false
		}
		if !bok {
			return true
		}
		if desc {
			return strings.Compare(b, a) < 0
		}
		return strings.Compare(a, b) < 0
	})
}
