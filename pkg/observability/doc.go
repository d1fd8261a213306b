/*
Package observability turns engine lifecycle events into Prometheus metrics.

	reg := prometheus.NewRegistry()
	metrics, _ := observability.NewMetrics(reg)
	eng := htn.New(htn.WithLifecycleHooks(metrics.Hooks()))
*/
package observability
