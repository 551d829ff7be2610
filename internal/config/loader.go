package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// Load reads configuration from environment variables, applies defaults and
// validates the result. Every missing or malformed variable is reported in
// one error.
func Load() (*Config, error) {
	cfg := &Config{}

	var errs []error
	populate(reflect.ValueOf(cfg).Elem(), &errs)
	if len(errs) > 0 {
		return nil, fmt.Errorf("config load: %w", errors.Join(errs...))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// populate fills the tagged fields of struct v, descending into nested
// config groups. Failures are appended to errs.
func populate(v reflect.Value, errs *[]error) {
	t := v.Type()

	for i := range t.NumField() {
		field := t.Field(i)
		fv := v.Field(i)
		if !fv.CanSet() {
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			populate(fv, errs)
			continue
		}

		name := field.Tag.Get("env")
		if name == "" {
			continue
		}

		raw, ok := lookupEnv(name, field.Tag.Get("envAlt"))
		if !ok {
			if field.Tag.Get("required") == "true" {
				*errs = append(*errs, fmt.Errorf("%s is required", name))
				continue
			}
			raw = field.Tag.Get("default")
		}
		if raw == "" {
			continue
		}

		if err := assign(fv, raw); err != nil {
			*errs = append(*errs, fmt.Errorf("%s=%q: %w", name, raw, err))
		}
	}
}

// lookupEnv returns the first non-empty value among the named variables.
func lookupEnv(names ...string) (string, bool) {
	for _, n := range names {
		if n == "" {
			continue
		}
		if v := strings.TrimSpace(os.Getenv(n)); v != "" {
			return v, true
		}
	}
	return "", false
}

// assign parses raw into the field according to its type.
func assign(fv reflect.Value, raw string) error {
	if fv.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return errors.New("not a duration")
		}
		fv.SetInt(int64(d))
		return nil
	}

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, fv.Type().Bits())
		if err != nil {
			return errors.New("not an integer")
		}
		fv.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.New("not a boolean")
		}
		fv.SetBool(b)
	case reflect.Slice:
		if fv.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice of %s", fv.Type().Elem().Kind())
		}
		fv.Set(reflect.ValueOf(splitList(raw)))
	default:
		return fmt.Errorf("unsupported field type %s", fv.Kind())
	}
	return nil
}

// splitList splits a comma-separated value, dropping blank entries.
func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks cross-field constraints and reports every failure at once.
func (c *Config) Validate() error {
	var errs []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Sprintf(format, args...))
		}
	}

	check(c.Database.URL != "", "DATABASE_URL is required")
	check(c.Database.MaxConns > 0, "DB_MAX_CONNS must be positive")
	check(c.Database.MinConns >= 0, "DB_MIN_CONNS must be non-negative")
	check(c.Database.MaxConns >= c.Database.MinConns,
		"DB_MAX_CONNS (%d) must be >= DB_MIN_CONNS (%d)", c.Database.MaxConns, c.Database.MinConns)

	check(c.Server.Port > 0 && c.Server.Port <= 65535, "SERVER_PORT (%d) must be 1-65535", c.Server.Port)
	check(c.Server.ReadTimeout >= 0, "SERVER_READ_TIMEOUT must be non-negative")
	check(c.Server.ShutdownTimeout > 0, "SERVER_SHUTDOWN_TIMEOUT must be positive")

	check(c.Load.MaxFileSize > 0, "LOAD_MAX_FILE_SIZE must be positive")
	check(c.Load.MaxWaitTime > 0, "LOAD_MAX_WAIT_TIME must be positive")
	check(c.Load.Timeout > 0, "LOAD_TIMEOUT must be positive")

	check(!c.Security.RequireAPIKey || len(c.Security.APIKeys) > 0,
		"REQUIRE_API_KEY is set but API_KEYS is empty")
	for _, cidr := range c.Security.TrustedProxies {
		_, err := netip.ParsePrefix(cidr)
		check(err == nil, "TRUSTED_PROXIES entry %q is not a CIDR", cidr)
	}

	check(slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Logging.Level)),
		"LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level)
	check(slices.Contains([]string{"text", "json"}, strings.ToLower(c.Logging.Format)),
		"LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format)

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// String renders the config for logging with the database URL and API keys
// masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Server: {Host: %q, Port: %d}, "+
		"Database: {URL: [MASKED], MaxConns: %d, MinConns: %d}, "+
		"Load: {MaxFileSize: %d, Timeout: %s, MaxWaitTime: %s}, "+
		"Security: {RequireAPIKey: %v, APIKeys: [%d MASKED], TrustedProxies: %v}, "+
		"Logging: {Level: %q, Format: %q}}",
		c.Server.Host, c.Server.Port,
		c.Database.MaxConns, c.Database.MinConns,
		c.Load.MaxFileSize, c.Load.Timeout, c.Load.MaxWaitTime,
		c.Security.RequireAPIKey, len(c.Security.APIKeys), c.Security.TrustedProxies,
		c.Logging.Level, c.Logging.Format,
	)
}
