package redis

import "time"

// Config holds Redis connection settings for the word source
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// ConnectTimeout bounds the initial ping
	ConnectTimeout time.Duration

	// KeyPrefix namespaces every key written or read
	KeyPrefix string
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:            "redis://localhost:6379",
		PoolSize:       2,
		MinIdleConns:   0,
		ConnectTimeout: 5 * time.Second,
		KeyPrefix:      "hangman",
	}
}
