// Package telemetry holds business-level observability: Prometheus
// counters for the storefront funnel and optional Sentry error
// tracking. HTTP-level metrics live in the middleware package.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for storefront activity.
type BusinessMetrics struct {
	// Catalog engagement
	ProductSearches *prometheus.CounterVec

	// Cart
	CartItemsAdded prometheus.Counter

	// Checkout
	OrdersPlaced   prometheus.Counter
	OrderValue     prometheus.Histogram
	OrderItemCount prometheus.Histogram

	// Promocodes
	PromoValidations *prometheus.CounterVec

	// Auth
	Signups      prometheus.Counter
	Logins       prometheus.Counter
	LoginsFailed prometheus.Counter

	// Email delivery
	EmailSent   prometheus.Counter
	EmailFailed prometheus.Counter
}

// Business is the process-wide metrics instance. promauto registers
// everything on the default registry at init.
var Business = newBusinessMetrics("lavka")

func newBusinessMetrics(namespace string) *BusinessMetrics {
	const subsystem = "business"

	return &BusinessMetrics{
		ProductSearches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "product_searches_total",
				Help:      "Total catalog listings, labeled by filter kind",
			},
			[]string{"filter"}, // category, search, none
		),
		CartItemsAdded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cart_items_added_total",
			Help:      "Total add-to-cart actions",
		}),
		OrdersPlaced: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "orders_placed_total",
			Help:      "Total orders placed",
		}),
		OrderValue: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "order_value",
			Help:      "Order totals in the smallest currency unit",
			Buckets:   prometheus.ExponentialBuckets(500, 2.5, 8),
		}),
		OrderItemCount: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "order_item_count",
			Help:      "Line items per order",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
		}),
		PromoValidations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "promo_validations_total",
				Help:      "Total promocode validation attempts by result",
			},
			[]string{"result"}, // ok, invalid
		),
		Signups: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "signups_total",
			Help:      "Total completed registrations",
		}),
		Logins: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "logins_total",
			Help:      "Total successful logins",
		}),
		LoginsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "logins_failed_total",
			Help:      "Total rejected login attempts",
		}),
		EmailSent: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "email_sent_total",
			Help:      "Total transactional emails delivered",
		}),
		EmailFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "email_failed_total",
			Help:      "Total transactional email delivery failures",
		}),
	}
}
