package server

import (
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thisAbdU/amazon-pipeline/internal/overview"
	"github.com/thisAbdU/amazon-pipeline/internal/products"
)

// overviewLimit bounds the product list the dashboard KPIs are derived from.
const overviewLimit = 100

type Handler struct {
	client        products.Lister
	publicAPIBase string
	now           func() time.Time
}

func NewHandler(client products.Lister, publicAPIBase string) *Handler {
	return &Handler{
		client:        client,
		publicAPIBase: publicAPIBase,
		now:           time.Now,
	}
}

// Dashboard renders the overview page: KPI tiles, the synthetic 30-day
// trend and the five most recently updated products.
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	res, err := h.client.List(ctx, products.Filter{Limit: overviewLimit})
	if err != nil {
		log.Printf("Dashboard: list products: %v", err)
		h.renderError(c, err)
		return
	}

	sum := overview.Compute(res.Products)
	now := h.now()
	rng := rand.New(rand.NewSource(now.UnixNano()))
	trend := overview.Trend(sum.MeanPrice, now, rng)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"PageTitle": "Dashboard",
		"Summary":   sum,
		"Trend":     trend,
		"TrendSVG":  trendSVG(trend),
		"APIBase":   h.publicAPIBase,
	})
}

// Products renders the filterable, sortable, paginated table. All state
// arrives in the query string; filters pass through to the API verbatim and
// the sort only rearranges the fetched page.
func (h *Handler) Products(c *gin.Context) {
	ctx := c.Request.Context()
	f := products.ParseFilter(c.Request.URL.Query())

	res, err := h.client.List(ctx, f)
	if err != nil {
		log.Printf("Products: list products: %v", err)
		h.renderError(c, err)
		return
	}
	page := res.Products

	// Filter options come from the visible page only; the API has no
	// catalog-wide facet endpoint.
	brands := products.DistinctBrands(page)
	categories := products.DistinctCategories(page)

	sortCol := c.Query("sort")
	sortDesc := c.Query("dir") == "desc"
	products.SortPage(page, sortCol, sortDesc)

	c.HTML(http.StatusOK, "products.html", gin.H{
		"PageTitle":  "Products",
		"Filter":     f,
		"Products":   page,
		"Brands":     brands,
		"Categories": categories,
		"SortCol":    sortCol,
		"SortDesc":   sortDesc,
		"From":       f.Offset + 1,
		"To":         f.Offset + len(page),
		"HasNext":    products.HasNext(len(page), f.Limit),
		"HasPrev":    products.HasPrev(f.Offset),
		"NextURL":    f.PageURL(f.Offset + f.Limit),
		"PrevURL":    f.PageURL(maxInt(0, f.Offset-f.Limit)),
		"APIBase":    h.publicAPIBase,
	})
}

// ProductDetail renders one product with its price history. Any fetch
// failure is presented as not found rather than propagated.
func (h *Handler) ProductDetail(c *gin.Context) {
	ctx := c.Request.Context()
	asin := c.Param("asin")

	p, err := h.client.Get(ctx, asin)
	if err != nil {
		log.Printf("ProductDetail: get %s: %v", asin, err)
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{
			"PageTitle": "Not Found",
			"ASIN":      asin,
			"APIBase":   h.publicAPIBase,
		})
		return
	}

	c.HTML(http.StatusOK, "product.html", gin.H{
		"PageTitle":    p.Title,
		"Product":      p,
		"SparklineSVG": sparklineSVG(p.Sparkline),
		"APIBase":      h.publicAPIBase,
	})
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// renderError is the page-level crash boundary: a generic error page whose
// retry action is a plain reload of the same URL.
func (h *Handler) renderError(c *gin.Context, err error) {
	c.HTML(http.StatusBadGateway, "error.html", gin.H{
		"PageTitle": "Error",
		"Error":     err.Error(),
		"RetryURL":  c.Request.URL.RequestURI(),
		"APIBase":   h.publicAPIBase,
	})
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
