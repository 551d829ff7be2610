package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Set only required env var
	t.Setenv("DATABASE_URL", "postgres://localhost/test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Load.MaxFileSize != 536870912 {
		t.Errorf("Load.MaxFileSize = %d, want %d", cfg.Load.MaxFileSize, 536870912)
	}
	if cfg.Load.Timeout != 10*time.Minute {
		t.Errorf("Load.Timeout = %v, want %v", cfg.Load.Timeout, 10*time.Minute)
	}
	if cfg.Security.RequireAPIKey {
		t.Error("Security.RequireAPIKey = true, want false")
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOAD_MAX_FILE_SIZE", "1024")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Load.MaxFileSize != 1024 {
		t.Errorf("Load.MaxFileSize = %d, want %d", cfg.Load.MaxFileSize, 1024)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	// DB_URL works as fallback
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_URL", "postgres://localhost/alttest")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.URL != "postgres://localhost/alttest" {
		t.Errorf("Database.URL = %q, want %q", cfg.Database.URL, "postgres://localhost/alttest")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_URL", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for missing DATABASE_URL")
	}
}

func TestLoad_ReportsEveryBadVariable(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_URL", "")
	t.Setenv("SERVER_PORT", "eighty")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error")
	}
	for _, want := range []string{"DATABASE_URL", "SERVER_PORT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Load() error missing %s: %v", want, err)
		}
	}
}

func TestLoad_Duration(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("SERVER_READ_TIMEOUT", "45s")
	t.Setenv("LOAD_MAX_WAIT_TIME", "1m30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 45*time.Second)
	}
	if cfg.Load.MaxWaitTime != 90*time.Second {
		t.Errorf("Load.MaxWaitTime = %v, want %v", cfg.Load.MaxWaitTime, 90*time.Second)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("LOAD_TIMEOUT", "ten minutes")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "LOAD_TIMEOUT") {
		t.Fatalf("Load() error = %v, want LOAD_TIMEOUT error", err)
	}
}

func TestLoad_CommaSeparatedSlice(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 172.16.0.0/12 , 192.168.0.0/16")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}
	if len(cfg.Security.TrustedProxies) != len(want) {
		t.Fatalf("TrustedProxies = %v, want %v", cfg.Security.TrustedProxies, want)
	}
	for i, p := range want {
		if cfg.Security.TrustedProxies[i] != p {
			t.Errorf("TrustedProxies[%d] = %q, want %q", i, cfg.Security.TrustedProxies[i], p)
		}
	}
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			URL:      "postgres://localhost/test",
			MaxConns: 10,
			MinConns: 2,
		},
		Load: LoadConfig{
			MaxFileSize: 1 << 20,
			Timeout:     time.Minute,
			MaxWaitTime: time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "SERVER_PORT"},
		{name: "min above max conns", mutate: func(c *Config) { c.Database.MinConns = 20 }, wantErr: "DB_MAX_CONNS"},
		{name: "zero file size", mutate: func(c *Config) { c.Load.MaxFileSize = 0 }, wantErr: "LOAD_MAX_FILE_SIZE"},
		{name: "zero wait", mutate: func(c *Config) { c.Load.MaxWaitTime = 0 }, wantErr: "LOAD_MAX_WAIT_TIME"},
		{name: "api key required without keys", mutate: func(c *Config) { c.Security.RequireAPIKey = true }, wantErr: "API_KEYS"},
		{name: "bad proxy cidr", mutate: func(c *Config) { c.Security.TrustedProxies = []string{"10.0.0.1"} }, wantErr: "TRUSTED_PROXIES"},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "trace" }, wantErr: "LOG_LEVEL"},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	for _, want := range []string{"SERVER_PORT", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error missing %s: %v", want, err)
		}
	}
}

func TestString_MasksSecrets(t *testing.T) {
	cfg := validConfig()
	cfg.Database.URL = "postgres://user:hunter2@db/prod"
	cfg.Security.APIKeys = []string{"secret-key"}

	s := cfg.String()
	for _, secret := range []string{"hunter2", "secret-key"} {
		if strings.Contains(s, secret) {
			t.Errorf("String() leaks %q: %s", secret, s)
		}
	}
}

func TestServerConfig_Addr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"", 9090, ":9090"},
		{"::1", 8080, "[::1]:8080"},
	}

	for _, tt := range tests {
		c := ServerConfig{Host: tt.host, Port: tt.port}
		if got := c.Addr(); got != tt.want {
			t.Errorf("Addr() = %q, want %q", got, tt.want)
		}
	}
}
