package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Example_basicUsage demonstrates basic metrics configuration.
func Example_basicUsage() {
	testRegistry := prometheus.NewRegistry()
	registry := NewRegistry(testRegistry)

	fmt.Printf("Registry created with %d scheduler metrics\n", 5)

	registry.PartitionsSubmitted.WithLabelValues("test").Add(12)
	registry.PartitionsStolen.WithLabelValues("test").Add(4)
	registry.PartitionsInlined.WithLabelValues("test").Add(1)

	fmt.Println("Metrics updated successfully")

	// Output:
	// Registry created with 5 scheduler metrics
	// Metrics updated successfully
}

// Example_customRegistry demonstrates using a custom Prometheus registry.
func Example_customRegistry() {
	customRegistry := prometheus.NewRegistry()

	config := Config{
		Enabled:  true,
		Registry: customRegistry,
	}

	registry := NewRegistry(config.Registry)

	registry.PartitionsSubmitted.WithLabelValues("custom").Add(12)
	registry.PartitionsStolen.WithLabelValues("custom").Add(2)

	fmt.Printf("Custom registry enabled: %v\n", config.Enabled)
	fmt.Println("Custom registry configured with enki metrics")

	// Output:
	// Custom registry enabled: true
	// Custom registry configured with enki metrics
}

// Example_metricsServer demonstrates setting up a metrics HTTP server.
func Example_metricsServer() {
	// In a real application, you would start a metrics server:
	//
	// http.Handle("/metrics", promhttp.Handler())
	// log.Fatal(http.ListenAndServe(":8080", nil))
	//
	// Available metrics would include:
	// - enki_scheduler_partitions_submitted_total{scheduler_name="frame_scheduler"}
	// - enki_scheduler_partitions_stolen_total{scheduler_name="frame_scheduler"}
	// - enki_scheduler_partitions_inlined_total{scheduler_name="frame_scheduler"}
	// - enki_scheduler_pipe_depth{scheduler_name="frame_scheduler",worker_id="1"}
	// And more...

	fmt.Println("Metrics available at /metrics endpoint")
	fmt.Println("See cmd/enkidemo for a complete demonstration")

	// Output:
	// Metrics available at /metrics endpoint
	// See cmd/enkidemo for a complete demonstration
}

// Example_configuration demonstrates different metrics configurations.
func Example_configuration() {
	defaultConfig := DefaultConfig()
	fmt.Printf("Default enabled: %v\n", defaultConfig.Enabled)
	fmt.Printf("Default namespace: %s\n", defaultConfig.Namespace)

	customConfig := Config{
		Enabled:   false,
		Namespace: "myapp",
	}
	fmt.Printf("Custom enabled: %v\n", customConfig.Enabled)
	fmt.Printf("Custom namespace: %s\n", customConfig.Namespace)

	// Output:
	// Default enabled: true
	// Default namespace: enki
	// Custom enabled: false
	// Custom namespace: myapp
}
