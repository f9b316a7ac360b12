package engine

// Option configures an Engine.
type Option func(*config)

type config struct {
	cacheDir         string
	memoryLimitPages uint32
}

func defaultConfig() config {
	return config{}
}

// WithCacheDir enables wazero's on-disk compilation cache at dir.
func WithCacheDir(dir string) Option {
	return func(c *config) {
		c.cacheDir = dir
	}
}

// WithMemoryLimitPages caps the linear memory of every module (64KiB pages).
func WithMemoryLimitPages(pages uint32) Option {
	return func(c *config) {
		c.memoryLimitPages = pages
	}
}
