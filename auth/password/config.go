package password

import "fmt"

const (
	minSaltLength = 16
	minKeyLength  = 16
	minMemoryKiB  = 8 * 1024
)

// Config configures argon2id hashing.
// Defaults follow OWASP recommendations: time=1, memory=64MB, threads=4.
type Config struct {
	// Time is the number of iterations (default: 1).
	Time uint32 `yaml:"time" mapstructure:"time"`

	// Memory is the memory usage in KiB (default: 65536 = 64MB).
	Memory uint32 `yaml:"memory" mapstructure:"memory"`

	// Threads is the parallelism (default: 4).
	Threads uint8 `yaml:"threads" mapstructure:"threads"`

	// SaltLength is the salt size in bytes (default: 16, minimum: 16).
	SaltLength uint32 `yaml:"salt_length" mapstructure:"salt_length"`

	// KeyLength is the digest size in bytes (default: 32).
	KeyLength uint32 `yaml:"key_length" mapstructure:"key_length"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Time == 0 {
		c.Time = 1
	}
	if c.Memory == 0 {
		c.Memory = 64 * 1024
	}
	if c.Threads == 0 {
		c.Threads = 4
	}
	if c.SaltLength == 0 {
		c.SaltLength = 16
	}
	if c.KeyLength == 0 {
		c.KeyLength = 32
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Memory < minMemoryKiB {
		return fmt.Errorf("password.memory must be >= %d KiB (got: %d)", minMemoryKiB, c.Memory)
	}
	if c.Time < 1 {
		return fmt.Errorf("password.time must be >= 1 (got: %d)", c.Time)
	}
	if c.SaltLength < minSaltLength {
		return fmt.Errorf("password.salt_length must be >= %d (got: %d)", minSaltLength, c.SaltLength)
	}
	if c.KeyLength < minKeyLength {
		return fmt.Errorf("password.key_length must be >= %d (got: %d)", minKeyLength, c.KeyLength)
	}
	return nil
}

// PoolConfig configures the hashing worker pool.
type PoolConfig struct {
	// Workers is the number of goroutines executing hash/verify jobs
	// (default: 4).
	Workers int `yaml:"workers" mapstructure:"workers"`

	// QueueSize is the capacity of the job queue (default: 64).
	QueueSize int `yaml:"queue_size" mapstructure:"queue_size"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *PoolConfig) ApplyDefaults() {
	if c.Workers == 0 {
		c.Workers = 4
	}
	if c.QueueSize == 0 {
		c.QueueSize = 64
	}
}

// Validate checks the configuration.
func (c *PoolConfig) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("pool.workers must be >= 1 (got: %d)", c.Workers)
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("pool.queue_size must be >= 1 (got: %d)", c.QueueSize)
	}
	return nil
}
