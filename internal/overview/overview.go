// Package overview derives the dashboard KPIs from one fetched page of
// products. Everything here is pure computation over the snapshot; nothing
// is cached between renders.
package overview

import (
	"math"
	"sort"
	"strings"

	"github.com/thisAbdU/amazon-pipeline/internal/products"
)

const recentCount = 5

// Summary is the set of KPI values shown on the dashboard.
type Summary struct {
	TotalProducts  int
	InStockCount   int
	InStockPercent int
	MedianPrice    float64
	MeanPrice      float64
	Recent         []products.Product
}

// Compute derives the summary from a bounded product list. Zero products
// yields zero metrics rather than a division by zero; products without a
// price are excluded from both mean and median.
func Compute(list []products.Product) Summary {
	s := Summary{TotalProducts: len(list)}

	for _, p := range list {
		if inStock(p) {
			s.InStockCount++
		}
	}
	if s.TotalProducts > 0 {
		s.InStockPercent = int(math.Round(float64(s.InStockCount) / float64(s.TotalProducts) * 100))
	}

	var prices []float64
	for _, p := range list {
		if p.LatestOffer != nil && p.LatestOffer.Price != nil {
			prices = append(prices, *p.LatestOffer.Price)
		}
	}
	if len(prices) > 0 {
		var sum float64
		for _, p := range prices {
			sum += p
		}
		s.MeanPrice = sum / float64(len(prices))

		sort.Float64s(prices)
		// Upper median for even counts, matching the pipeline's reporting.
		s.MedianPrice = prices[len(prices)/2]
	}

	s.Recent = mostRecent(list, recentCount)
	return s
}

// inStock is a heuristic over free-text availability, not a vocabulary:
// anything mentioning "stock" or "available" counts, which means
// "out of stock" counts too. It mirrors the KPI the pipeline has always
// reported; the per-product badge in format is the stricter classifier.
func inStock(p products.Product) bool {
	if p.LatestOffer == nil {
		return false
	}
	s := strings.ToLower(p.LatestOffer.Availability)
	return strings.Contains(s, "stock") || strings.Contains(s, "available")
}

// mostRecent returns up to n products ordered by latest offer fetch time,
// newest first. A missing offer or timestamp sorts as earliest.
func mostRecent(list []products.Product, n int) []products.Product {
	out := make([]products.Product, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return fetchedUnix(out[i]) > fetchedUnix(out[j])
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func fetchedUnix(p products.Product) int64 {
	if p.LatestOffer == nil || p.LatestOffer.FetchedAt.IsZero() {
		return 0
	}
	return p.LatestOffer.FetchedAt.Unix()
}
