package enhancer

// Config identifies which LLM provider, credentials and model a single
// enhancement call should target.
//
// The enhancer itself never interprets its fields beyond deciding whether a
// usable configuration is present at all; the builder registered under
// `Provider` consumes the rest. A Config is never mutated once passed in.
type Config struct {
	Provider string `mapstructure:"provider"`
	ApiKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
	BaseUrl  string `mapstructure:"base_url"`
}

// IsZero reports whether the configuration carries no usable provider fields.
func (c Config) IsZero() bool {
	return c == Config{}
}
