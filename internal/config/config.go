package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBUser                 string `env:"DB_USER,required"`
	DBPassword             string `env:"DB_PASSWORD,required"`
	DBHost                 string `env:"DB_HOST,required"` // e.g. tcp(host:3306) or unix(/cloudsql/instance)
	DBName                 string `env:"DB_NAME,required"`
	DBPort                 string `env:"DB_PORT" envDefault:"3306"`
	InstanceConnectionName string `env:"INSTANCE_CONNECTION_NAME"`

	DBMaxOpenConns     int `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns     int `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetimeM int `env:"DB_CONN_MAX_LIFETIME_MINUTES" envDefault:"5"`

	// Bucket for listing images; uploads are disabled when empty.
	StorageBucket string `env:"STORAGE_BUCKET"`

	// Endpoint receiving message notifications; dispatch is skipped when empty.
	NotifyEndpoint string `env:"NOTIFY_ENDPOINT"`

	// Redis read cache; disabled when no address is set.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	FirebaseProjectID string `env:"FIREBASE_PROJECT_ID"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
