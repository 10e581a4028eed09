// Package metrics defines and registers the custom Prometheus metrics of the
// paywall service. HTTP request metrics come from the echoprometheus middleware;
// this package only holds the domain counters.
//
// All metrics register with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "paywall"

// Label values for ArticleReadsTotal.
const (
	ReadGranted = "granted"
	ReadDenied  = "denied"
	ReadMember  = "member"
)

// Label values for LoginsTotal.
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
)

// ── Article metrics ───────────────────────────────────────────────────────────

// ArticleReadsTotal counts single-article access decisions.
// Label:
//   - result: "granted" / "denied" for anonymous reads, "member" for logged-in reads
var ArticleReadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "article_reads_total",
		Help:      "Total number of single-article access decisions, by result.",
	},
	[]string{"result"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (unknown username)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionResetsTotal counts explicit session resets.
var SessionResetsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_resets_total",
		Help:      "Total number of session resets.",
	},
)

// ── Seeding metrics ───────────────────────────────────────────────────────────

// SeedRunsTotal counts seed attempts.
// Label:
//   - result: "seeded", "skipped" (store not empty) or "error"
var SeedRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seed_runs_total",
		Help:      "Total number of seed attempts, by result.",
	},
	[]string{"result"},
)
