// Package metrics defines and registers the custom Prometheus metrics of the
// directory API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry on package init through
// promauto; the /metrics endpoint exposes them next to the HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "directory"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts accounts created.
// Label:
//   - role: "artist" or "establishment"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Profile metrics ───────────────────────────────────────────────────────────

// NameChangesTotal counts display name change attempts.
// Label:
//   - result: "accepted" or "cooldown"
var NameChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "name_changes_total",
		Help:      "Total number of display name change attempts, by result.",
	},
	[]string{"result"},
)

// GalleryItemsAddedTotal counts gallery images attached to profiles.
var GalleryItemsAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gallery_items_added_total",
		Help:      "Total number of gallery items created.",
	},
)

// ── Media metrics ─────────────────────────────────────────────────────────────

// MediaStoredBytes observes the decoded size of every stored image.
var MediaStoredBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "media_stored_bytes",
		Help:      "Size of decoded images written to the media directory.",
		Buckets:   prometheus.ExponentialBuckets(16*1024, 4, 7), // 16KiB .. 64MiB
	},
)

// MediaErrorsTotal counts rejected or failed media writes.
// Label:
//   - reason: "malformed", "decode" or "write"
var MediaErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_errors_total",
		Help:      "Total number of images that could not be stored, by reason.",
	},
	[]string{"reason"},
)
