package metrics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultNamespace = "contactbook"

// PromMetrics records contact store activity.
type PromMetrics struct {
	operations   *prometheus.CounterVec
	saveFailures *prometheus.CounterVec
	skippedLines prometheus.Counter
	records      prometheus.Gauge
}

func registerCollector(reg prometheus.Registerer, c prometheus.Collector) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return
		}
	}
}

func NewPromMetrics(reg prometheus.Registerer, namespace string) *PromMetrics {
	if strings.TrimSpace(namespace) == "" {
		namespace = defaultNamespace
	}

	pm := &PromMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total", Help: "Store operations by operation and outcome",
		}, []string{"op", "outcome"}),

		saveFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "save_failures_total", Help: "Failed saves of the contacts file by reason",
		}, []string{"reason"}),

		skippedLines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "load_skipped_lines_total", Help: "Lines skipped while loading the contacts file",
		}),

		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records", Help: "Contacts currently held in memory",
		}),
	}

	registerCollector(reg, pm.operations)
	registerCollector(reg, pm.saveFailures)
	registerCollector(reg, pm.skippedLines)
	registerCollector(reg, pm.records)

	return pm
}

func (p *PromMetrics) ObserveOperation(op, outcome string) {
	p.operations.WithLabelValues(op, outcome).Inc()
}

func (p *PromMetrics) IncSaveFailure(reason string) {
	p.saveFailures.WithLabelValues(reason).Inc()
}

func (p *PromMetrics) AddSkippedLines(n int) {
	if n > 0 {
		p.skippedLines.Add(float64(n))
	}
}

func (p *PromMetrics) SetRecords(n int) {
	p.records.Set(float64(n))
}

// WriteTextfile dumps everything g gathers into path in the text exposition
// format, for the node_exporter textfile collector. An empty path is a no-op.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
