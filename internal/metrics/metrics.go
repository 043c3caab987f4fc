package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PageViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "page_views_total",
		Help:      "Rendered pages and fragments by route.",
	}, []string{"route"})

	FilterRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "filter_requests_total",
		Help:      "Category filter selections by list and category.",
	}, []string{"list", "category"})

	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "contact_submissions_total",
		Help:      "Contact form submissions by outcome.",
	}, []string{"outcome"})

	VisitsTracked = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "visits_tracked_total",
		Help:      "Page views written to the analytics store.",
	})
)

// Contact submission outcomes.
const (
	OutcomeSent      = "sent"
	OutcomeInvalid   = "invalid"
	OutcomeLimited   = "rate_limited"
	OutcomeCancelled = "cancelled"
)
