package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Operation outcomes recorded by Metrics.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics holds the engine's business collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	operations    *prometheus.CounterVec
	rewardsMinted prometheus.Counter
	rewardsBurned prometheus.Counter
	paymentVolume prometheus.Counter
	duplicates    prometheus.Counter
	rewardRate    prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rewards",
				Name:      "operations_total",
				Help:      "Engine operations by name and outcome.",
			},
			[]string{"operation", "outcome"},
		),
		rewardsMinted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rewards",
			Name:      "minted_base_units_total",
			Help:      "Reward tokens issued, in base units.",
		}),
		rewardsBurned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rewards",
			Name:      "redeemed_base_units_total",
			Help:      "Reward tokens burned by redemption, in base units.",
		}),
		paymentVolume: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rewards",
			Name:      "payment_volume_base_units_total",
			Help:      "Payment amounts that earned rewards, in base units.",
		}),
		duplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rewards",
			Name:      "duplicate_transactions_total",
			Help:      "Issuance attempts rejected as already processed.",
		}),
		rewardRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rewards",
			Name:      "reward_rate_bps",
			Help:      "Current reward rate in basis points.",
		}),
	}
	reg.MustRegister(m.operations, m.rewardsMinted, m.rewardsBurned, m.paymentVolume, m.duplicates, m.rewardRate)
	return m
}

// Operation counts one call of op with the given outcome.
func (m *Metrics) Operation(op, outcome string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op, outcome).Inc()
}

// Minted records a successful issuance.
func (m *Metrics) Minted(paymentAmount, reward uint64) {
	if m == nil {
		return
	}
	m.paymentVolume.Add(float64(paymentAmount))
	m.rewardsMinted.Add(float64(reward))
}

// Redeemed records a successful burn.
func (m *Metrics) Redeemed(amount uint64) {
	if m == nil {
		return
	}
	m.rewardsBurned.Add(float64(amount))
}

// Duplicate records a rejected replay.
func (m *Metrics) Duplicate() {
	if m == nil {
		return
	}
	m.duplicates.Inc()
}

// RewardRate publishes the active rate.
func (m *Metrics) RewardRate(bps uint16) {
	if m == nil {
		return
	}
	m.rewardRate.Set(float64(bps))
}
