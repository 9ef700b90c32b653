package config

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const EnvPrefix = "ROPDEMO_"

type Config struct {
	Log  LogConfig  `koanf:"log"`
	Demo DemoConfig `koanf:"demo"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `koanf:"json"`
}

// DemoConfig controls the latency of the in-memory catalog and price sources.
type DemoConfig struct {
	LookupDelay time.Duration `koanf:"lookup_delay" validate:"gte=0"`
	PriceDelay  time.Duration `koanf:"price_delay"  validate:"gte=0"`
	TaxDelay    time.Duration `koanf:"tax_delay"    validate:"gte=0"`
	UserID      int           `koanf:"user_id"      validate:"gt=0"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Demo: DemoConfig{
			LookupDelay: 20 * time.Millisecond,
			PriceDelay:  300 * time.Millisecond,
			TaxDelay:    100 * time.Millisecond,
			UserID:      1,
		},
	}
}

// Load applies defaults, then ROPDEMO_* environment variables
// (ROPDEMO_DEMO_PRICE_DELAY=1s sets demo.price_delay), then validates.
func Load(_ context.Context) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnvKey,
	}), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load environment variables")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal configuration")
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

// transformEnvKey maps ROPDEMO_DEMO_LOOKUP_DELAY to demo.lookup_delay.
func transformEnvKey(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	parts := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_'
	})
	if len(parts) < 2 {
		return strings.Join(parts, "_"), value
	}
	return parts[0] + "." + strings.Join(parts[1:], "_"), value
}
