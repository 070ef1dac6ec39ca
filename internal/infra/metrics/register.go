package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once
	collectors   []prometheus.Collector
)

// register queues collectors at init time. The gateway request counter and
// duration histogram enqueue themselves here so binaries only have to call
// MustRegister once during bootstrap.
func register(cs ...prometheus.Collector) {
	collectors = append(collectors, cs...)
}

// MustRegister installs every queued collector with the default prometheus
// registry. Repeat calls are no-ops, so shared bootstrap paths stay safe.
func MustRegister() {
	registerOnce.Do(func() {
		if len(collectors) > 0 {
			prometheus.MustRegister(collectors...)
		}
	})
}
