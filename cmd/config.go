package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/etnz/bperf/date"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "bperf.yaml"

// Config holds the settings of the application. They are read from a YAML
// file and can be overridden by the global flags.
type Config struct {
	Data     string        `yaml:"data" validate:"required"`
	Select   string        `yaml:"select"`
	Currency string        `yaml:"currency" validate:"required,currency"`
	Effects  []string      `yaml:"effects" validate:"dive,required"`
	Holidays []string      `yaml:"holidays" validate:"dive,datetime=2006-01-02"`
	Cache    time.Duration `yaml:"cache" validate:"gte=0"`
}

// DefaultConfig is used when there is no configuration file.
func DefaultConfig() Config {
	return Config{
		Data:     "marketdata.jsonl",
		Currency: "USD",
	}
}

var validate = newValidator()

// newValidator knows the "currency" tag: an ISO code go-money can format.
func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return money.GetCurrency(fl.Field().String()) != nil
	})
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadConfig reads the configuration file, applies the flags set on the
// command line, and validates the result. A missing default file is not an
// error.
func LoadConfig(filename string, flags *flag.FlagSet) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(filename)
	switch {
	case errors.Is(err, fs.ErrNotExist) && filename == defaultConfigFile:
		// no configuration file, defaults apply
	case err != nil:
		return Config{}, fmt.Errorf("cannot open %q for reading: %w", filename, err)
	default:
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("format error in %q: %w", filename, err)
		}
	}

	// Only the flags actually set override the file.
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Data = f.Value.String()
		case "select":
			cfg.Select = f.Value.String()
		case "currency":
			cfg.Currency = f.Value.String()
		}
	})
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// holidays parses the configured holidays.
func (c Config) holidays() ([]date.Date, error) {
	days := make([]date.Date, 0, len(c.Holidays))
	for _, h := range c.Holidays {
		d, err := date.Parse(h)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday: %w", err)
		}
		days = append(days, d)
	}
	return days, nil
}
