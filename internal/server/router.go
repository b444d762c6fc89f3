// Package server wires the gin engine: routes, middleware, templates and
// static assets for the dashboard UI.
package server

import (
	"html/template"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thisAbdU/amazon-pipeline/internal/format"
	"github.com/thisAbdU/amazon-pipeline/internal/products"
)

type Options struct {
	Client        products.Lister
	PublicAPIBase string
	// TemplateGlob and StaticDir locate web assets relative to the working
	// directory, e.g. "web/templates/*.html" and "./web/static".
	TemplateGlob string
	StaticDir    string
}

// New builds the router with all pages registered.
func New(opts Options) *gin.Engine {
	r := gin.Default()
	r.Use(RequestID())

	r.SetFuncMap(template.FuncMap{
		"money":  format.Money,
		"moneyv": func(v float64) string { return format.Money(&v, "USD") },
		"moneyc": func(v float64, currency string) string { return format.Money(&v, currency) },
		"date":   format.Date,
		"timeago": func(t time.Time) string {
			return format.TimeAgo(t, time.Now())
		},
		"badge": format.AvailabilityBadge,
	})
	r.LoadHTMLGlob(opts.TemplateGlob)
	r.Static("/static", opts.StaticDir)

	h := NewHandler(opts.Client, opts.PublicAPIBase)

	r.GET("/", h.Dashboard)
	r.GET("/products", h.Products)
	r.GET("/products/:asin", h.ProductDetail)
	r.GET("/healthz", h.Healthz)

	return r
}
