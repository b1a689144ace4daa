package config

// Otel configures tracing. Spans are only exported when CollectorURL is set.
type Otel struct {
	ServiceName   string  `env:"OTEL_SERVICE_NAME" envDefault:"supplier-catalog"`
	CollectorURL  string  `env:"OTEL_COLLECTOR_URL"`
	Insecure      bool    `env:"OTEL_INSECURE"`
	TraceIDRatio  float64 `env:"OTEL_TRACE_ID_RATIO" envDefault:"0.1"`
	CollectorAuth string  `env:"OTEL_COLLECTOR_AUTH,unset"`

	K8sPodName   string `env:"K8S_POD_NAME"`
	K8sNamespace string `env:"K8S_NAMESPACE"`
}

// Enabled reports whether spans are exported.
func (o Otel) Enabled() bool {
	return o.CollectorURL != ""
}
