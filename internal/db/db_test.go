package db

import (
	"testing"
	"time"

	"marketplace-backend/internal/config"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			"plain host",
			config.Config{DBUser: "u", DBPassword: "p", DBHost: "localhost", DBPort: "3306", DBName: "market"},
			"u:p@tcp(localhost:3306)/market?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			"tcp form passes through",
			config.Config{DBUser: "u", DBPassword: "p", DBHost: "tcp(db:3307)", DBName: "market"},
			"u:p@tcp(db:3307)/market?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			"socket path",
			config.Config{DBUser: "u", DBPassword: "p", DBHost: "/var/run/mysqld.sock", DBName: "market"},
			"u:p@unix(/var/run/mysqld.sock)/market?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			"cloud sql instance wins",
			config.Config{DBUser: "u", DBPassword: "p", DBHost: "ignored", InstanceConnectionName: "proj:region:inst", DBName: "market"},
			"u:p@unix(/cloudsql/proj:region:inst)/market?charset=utf8mb4&parseTime=True&loc=Local",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildDSN(&tt.cfg); got != tt.want {
				t.Fatalf("got=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestPoolParams(t *testing.T) {
	tests := []struct {
		name         string
		cfg          config.Config
		wantOpen     int
		wantIdle     int
		wantLifetime time.Duration
	}{
		{"configured values", config.Config{DBMaxOpenConns: 20, DBMaxIdleConns: 8, DBConnMaxLifetimeM: 10}, 20, 8, 10 * time.Minute},
		{"zero values fall back", config.Config{}, 10, 5, 5 * time.Minute},
		{"idle clamped to open", config.Config{DBMaxOpenConns: 4, DBMaxIdleConns: 9, DBConnMaxLifetimeM: 1}, 4, 2, 1 * time.Minute},
		{"single connection keeps one idle", config.Config{DBMaxOpenConns: 1, DBConnMaxLifetimeM: 1}, 1, 1, 1 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, idle, lifetime := poolParams(&tt.cfg)
			if open != tt.wantOpen || idle != tt.wantIdle || lifetime != tt.wantLifetime {
				t.Fatalf("got (%d,%d,%v) want (%d,%d,%v)", open, idle, lifetime, tt.wantOpen, tt.wantIdle, tt.wantLifetime)
			}
		})
	}
}
