package graph

// Config controls what inspectors extract
type Config struct {
	IncludeUnexported bool
}

func DefaultConfig() *Config {
	return &Config{
		IncludeUnexported: true,
	}
}
