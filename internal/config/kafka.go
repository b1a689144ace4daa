package config

// Kafka is optional: with no addresses, status change events are not published.
type Kafka struct {
	Addresses []string `env:"KAFKA_ADDRESSES" envSeparator:","`
	Group     string   `env:"KAFKA_GROUP" envDefault:"supplier-catalog"`
	ClientID  string   `env:"KAFKA_CLIENT_ID" envDefault:"supplier-catalog"`
}

// Enabled reports whether any broker address is configured.
func (k Kafka) Enabled() bool {
	return len(k.Addresses) > 0
}
