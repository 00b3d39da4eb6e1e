package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the ledger operations. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	// Ledger operations by name and outcome
	Operations *prometheus.CounterVec

	// Operations aborted because the escrow boundary refused the movement
	TransferFailures prometheus.Counter
}

// New creates a new Metrics instance with all ledger metrics registered.
func New() *Metrics {
	return &Metrics{
		Operations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crowdvault_operations_total",
			Help: "Total ledger operations by operation name and outcome",
		}, []string{"operation", "outcome"}), // outcome: "ok", "rejected", "failed"

		TransferFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "crowdvault_transfer_failures_total",
			Help: "Total operations aborted by a failed escrow transfer",
		}),
	}
}

// RecordOperation counts one ledger operation with its outcome.
func (m *Metrics) RecordOperation(operation, outcome string) {
	if m != nil {
		m.Operations.WithLabelValues(operation, outcome).Inc()
	}
}

// RecordTransferFailure counts an operation aborted at the escrow boundary.
func (m *Metrics) RecordTransferFailure() {
	if m != nil {
		m.TransferFailures.Inc()
	}
}
