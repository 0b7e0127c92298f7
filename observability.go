package tmi

import (
	"sync/atomic"

	logging "github.com/op/go-logging"
	"github.com/prometheus/client_golang/prometheus"
)

// log is the package diagnostics logger. It is reached only from Classify
// when a command is not recognized and from a typed projector's error
// return; a known command and a projector's success path never touch it.
var log = logging.MustGetLogger("tmi")

// metrics, installed via SetMetricsRegisterer, is nil until a caller opts
// in. Every read goes through an atomic.Pointer so installation is safe to
// race with concurrent parsing.
var metrics atomic.Pointer[Metrics]

// Metrics are the counters this package can optionally report. Callers
// register them against their own prometheus.Registerer; the zero value
// (before SetMetricsRegisterer is called) means no counters are touched.
type Metrics struct {
	ProjectionErrors *prometheus.CounterVec
}

// SetMetricsRegisterer wires this package's counters into reg. Safe to
// call once at startup before any Parse/As* calls happen concurrently;
// safe to call again later to swap registries (e.g. in tests).
func SetMetricsRegisterer(reg prometheus.Registerer) error {
	m := &Metrics{
		ProjectionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tmi",
			Name:      "projection_errors_total",
			Help:      "Typed message projections that returned an error, by message type and error kind.",
		}, []string{"message", "kind"}),
	}
	if err := reg.Register(m.ProjectionErrors); err != nil {
		return err
	}
	metrics.Store(m)
	return nil
}

// logUnknownCommand reports a command slice the classifier did not
// recognize. Called from Classify, never from the success path for a
// known command, so well-formed traffic never touches the logger.
func logUnknownCommand(raw []byte) {
	log.Debugf("tmi: unknown command %q", raw)
}

// recordProjectionError reports a typed-projection failure if metrics have
// been installed; it is always called from an error-return path only.
func recordProjectionError(message string, err error) {
	m := metrics.Load()
	if m == nil {
		return
	}
	kind := "other"
	switch err.(type) {
	case *WrongCommand:
		kind = "wrong_command"
	case *MissingRequired:
		kind = "missing_required"
	case *BadTagValue:
		kind = "bad_tag_value"
	}
	m.ProjectionErrors.WithLabelValues(message, kind).Inc()
	log.Debugf("tmi: %s projection failed: %v", message, err)
}
