package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SalesMetrics holds every metric recorded by the stock, sale and commission
// usecases.
type SalesMetrics struct {
	AllocationsTotal      *prometheus.CounterVec
	RecallsTotal          *prometheus.CounterVec
	TransferFailuresTotal *prometheus.CounterVec
	BulkBatchSize         *prometheus.HistogramVec

	SalesTotal       *prometheus.CounterVec
	SalesAmountTotal *prometheus.CounterVec

	CommissionsCreatedTotal      *prometheus.CounterVec
	CommissionsAmountTotal       *prometheus.CounterVec
	CommissionStatusUpdatesTotal *prometheus.CounterVec
}

func NewSalesMetrics() *SalesMetrics {
	return NewSalesMetricsWith(prometheus.DefaultRegisterer)
}

// NewSalesMetricsWith registers against an explicit registerer so tests can
// pass a fresh registry.
func NewSalesMetricsWith(reg prometheus.Registerer) *SalesMetrics {
	factory := promauto.With(reg)

	return &SalesMetrics{
		AllocationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stock_allocations_total",
				Help: "Completed stock allocations by role pair",
			},
			[]string{"from_role", "to_role"},
		),

		RecallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stock_recalls_total",
				Help: "Completed stock recalls by recaller role",
			},
			[]string{"recaller_role"},
		),

		TransferFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stock_transfer_failures_total",
				Help: "Rejected transfer commands by operation and reason",
			},
			[]string{"operation", "reason"},
		),

		BulkBatchSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stock_bulk_batch_size",
				Help:    "Item count of bulk transfer batches",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{"operation"},
		),

		SalesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_total",
				Help: "Recorded sales by sale type",
			},
			[]string{"sale_type"},
		),

		SalesAmountTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_amount_total",
				Help: "Total sale amount by sale type",
			},
			[]string{"sale_type"},
		),

		CommissionsCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commissions_created_total",
				Help: "Commission entries created by beneficiary role",
			},
			[]string{"role"},
		),

		CommissionsAmountTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commissions_amount_total",
				Help: "Total commission amount created by beneficiary role",
			},
			[]string{"role"},
		),

		CommissionStatusUpdatesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_status_updates_total",
				Help: "Commission status transitions by target status",
			},
			[]string{"status"},
		),
	}
}
