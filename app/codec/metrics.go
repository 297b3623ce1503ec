package codec

import (
	"github.com/IrineSistiana/dnscodec/internal/rdata"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/zap"
)

type metrics struct {
	composed *prometheus.CounterVec
	errs     *prometheus.CounterVec
	size     prometheus.Histogram
}

func newMetrics() *metrics {
	return &metrics{
		composed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "records_composed_total",
			Help: "The total number of composed records",
		}, []string{"rtype"}),
		errs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "compose_errors_total",
			Help: "The total number of records that failed to compose",
		}, []string{"rtype"}),
		size: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rdata_bytes",
			Help:    "The length of composed record data",
			Buckets: []float64{4, 16, 64, 256, 1024, 4096, 16384, 65535},
		}),
	}
}

func (m *metrics) register(r prometheus.Registerer) error {
	return regMetrics(r, m.composed, m.errs, m.size)
}

func (m *metrics) observe(t rdata.Rtype, l int) {
	if m == nil {
		return
	}
	m.composed.WithLabelValues(t.String()).Inc()
	m.size.Observe(float64(l))
}

func (m *metrics) observeErr(t rdata.Rtype) {
	if m == nil {
		return
	}
	m.errs.WithLabelValues(t.String()).Inc()
}

func newMetricsReg() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func regMetrics(r prometheus.Registerer, cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// logMetrics writes every sample of g to logger.
func logMetrics(logger *zap.Logger, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			fields := make([]zap.Field, 0, 4)
			fields = append(fields, zap.String("metric", mf.GetName()))
			for _, lp := range m.GetLabel() {
				fields = append(fields, zap.String(lp.GetName(), lp.GetValue()))
			}
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				fields = append(fields, zap.Float64("value", m.GetCounter().GetValue()))
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				fields = append(fields, zap.Uint64("count", h.GetSampleCount()), zap.Float64("sum", h.GetSampleSum()))
			default:
				continue
			}
			logger.Info("stats", fields...)
		}
	}
	return nil
}
