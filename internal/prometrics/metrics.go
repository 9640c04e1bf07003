package prometrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewEventPublishRetriesTotal returns a Prometheus counter for the number of event publish retries
func NewEventPublishRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "event_publish_retries_total",
		Help: "Total number of retry attempts performed when publishing delivery events",
	})
}

// NewTransferInitiatedTotal returns a Prometheus counter for opened transfers
func NewTransferInitiatedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "transfer_initiated_total",
		Help: "Total number of courier-to-courier transfers opened",
	})
}

// NewTransferConfirmedTotal returns a Prometheus counter for confirmed transfers
func NewTransferConfirmedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "transfer_confirmed_total",
		Help: "Total number of transfers confirmed by the receiving courier",
	})
}

// NewTransferCodeMismatchTotal returns a Prometheus counter for rejected transfer codes
func NewTransferCodeMismatchTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "transfer_code_mismatch_total",
		Help: "Total number of transfer confirmations rejected for a wrong code",
	})
}

// TransferMetrics counts transfer outcomes.
type TransferMetrics struct {
	initiated prometheus.Counter
	confirmed prometheus.Counter
	mismatch  prometheus.Counter
}

// NewTransferMetrics bundles the transfer counters.
func NewTransferMetrics(initiated, confirmed, mismatch prometheus.Counter) *TransferMetrics {
	return &TransferMetrics{initiated: initiated, confirmed: confirmed, mismatch: mismatch}
}

// Initiated increments transfer_initiated_total.
func (m *TransferMetrics) Initiated() { m.initiated.Inc() }

// Confirmed increments transfer_confirmed_total.
func (m *TransferMetrics) Confirmed() { m.confirmed.Inc() }

// CodeMismatch increments transfer_code_mismatch_total.
func (m *TransferMetrics) CodeMismatch() { m.mismatch.Inc() }
