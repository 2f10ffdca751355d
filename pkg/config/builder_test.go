package config

// ConfigBuilder provides a fluent API for building Config instances in tests.
// It starts with default values and allows selective overrides.
type ConfigBuilder struct {
	cfg Config
}

// NewTestConfig creates a new ConfigBuilder with defaults applied. The
// resulting configuration is valid and can be used immediately.
func NewTestConfig() *ConfigBuilder {
	return &ConfigBuilder{cfg: *Default()}
}

// Build returns the built Config instance.
func (b *ConfigBuilder) Build() *Config {
	return &b.cfg
}

// WithRoot sets the resource root.
func (b *ConfigBuilder) WithRoot(root string) *ConfigBuilder {
	b.cfg.Resources.Root = root
	return b
}

// WithCustomRoot sets the custom override root.
func (b *ConfigBuilder) WithCustomRoot(root string) *ConfigBuilder {
	b.cfg.Resources.CustomRoot = root
	return b
}

// WithCustomEnabled toggles custom overrides.
func (b *ConfigBuilder) WithCustomEnabled(enabled bool) *ConfigBuilder {
	b.cfg.Resources.CustomEnabled = enabled
	return b
}

// WithAlias adds a locale alias.
func (b *ConfigBuilder) WithAlias(from, to string) *ConfigBuilder {
	if b.cfg.Locales.Aliases == nil {
		b.cfg.Locales.Aliases = make(map[string]string)
	}
	b.cfg.Locales.Aliases[from] = to
	return b
}

// WithLoggingLevel sets the logging level.
func (b *ConfigBuilder) WithLoggingLevel(level string) *ConfigBuilder {
	b.cfg.Telemetry.Logging.Level = level
	return b
}

// WithTracing enables tracing with the given sampler.
func (b *ConfigBuilder) WithTracing(sampler string, ratio float64) *ConfigBuilder {
	b.cfg.Telemetry.Tracing.Enabled = true
	b.cfg.Telemetry.Tracing.Sampler = sampler
	b.cfg.Telemetry.Tracing.SampleRatio = ratio
	return b
}

// MinimalConfig returns a valid configuration with only defaults.
func MinimalConfig() *Config {
	return NewTestConfig().Build()
}
