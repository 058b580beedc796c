/*
Package observability turns machine lifecycle events into logs and
Prometheus metrics.

Hooks from several sources can be merged with Combine and handed to
turing.WithLifecycleHooks:

	metrics, _ := observability.NewMetrics(prometheus.DefaultRegisterer)
	hooks := observability.Combine(metrics.Hooks(), observability.LogHooks(logger))
	sim, _ := turing.New(turing.WithLifecycleHooks(hooks))
*/
package observability
