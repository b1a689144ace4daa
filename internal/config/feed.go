package config

type Feed struct {
	Title          string `env:"FEED_TITLE" envDefault:"Product Feed"`
	Description    string `env:"FEED_DESCRIPTION" envDefault:"Active products feed for Facebook Catalog"`
	Currency       string `env:"FEED_CURRENCY" envDefault:"BDT"`
	Condition      string `env:"FEED_CONDITION" envDefault:"new"`
	ShippingWeight string `env:"FEED_SHIPPING_WEIGHT" envDefault:"0.0 kg"`

	// OutputPath is only read by the one-shot feed binary; empty means stdout.
	OutputPath string `env:"FEED_OUTPUT_PATH"`
}
