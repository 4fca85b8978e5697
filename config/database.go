package config

// RedisConfig contains Redis configuration for the persisted store.
// When disabled (or in dev mode) the client falls back to an in-memory
// store that does not survive restarts.
type RedisConfig struct {
	Enabled  bool   `env:"ENABLED"  envDefault:"false"`
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
