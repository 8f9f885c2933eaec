package logging

// Config holds the settings needed to build a Logger: a service name, a
// level, an environment label, static fields attached to every entry, and
// an optional rotated file sink; there is no middleware pipeline or policy
// enforcement layer.
type Config struct {
	Service      string
	Level        string
	Environment  string
	FilePath     *FileSinkConfig
	StaticFields map[string]any
}

// FileSinkConfig configures a lumberjack-rotated file sink.
type FileSinkConfig struct {
	Path       string
	MaxSize    int // MB
	MaxAge     int // days
	MaxBackups int
	Compress   bool
}

// DefaultConfig returns a stderr-only, INFO-level configuration for the
// given service name.
func DefaultConfig(service string) *Config {
	return &Config{
		Service:     service,
		Level:       string(INFO),
		Environment: "development",
	}
}
