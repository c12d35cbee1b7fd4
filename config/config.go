// Package config handles configuration from a YAML file, a .env file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/robertmeta/heca-cli/calendar"
	"github.com/robertmeta/heca-cli/model"
	"github.com/robertmeta/heca-cli/render"
)

// ErrUnknownCity is returned when a city is neither built in nor configured.
var ErrUnknownCity = errors.New("unknown city")

// Config is the contents of the configuration file.
type Config struct {
	// Language is a name ("english", "hebrew") or a BCP 47 tag.
	Language string `yaml:"language"`
	// Location is "diaspora" or "israel".
	Location string `yaml:"location"`
	// City is the default city for candle-lighting times.
	City string `yaml:"city"`

	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format"` // text, json

	// Cities extend or replace the built-in table by name.
	Cities         []CityConfig    `yaml:"cities"`
	CustomHolidays []HolidayConfig `yaml:"custom_holidays"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `yaml:"-"`
}

// CityConfig describes a city in the configuration file.
type CityConfig struct {
	Name                  string  `yaml:"name" json:"name"`
	Latitude              float64 `yaml:"latitude" json:"latitude"`
	Longitude             float64 `yaml:"longitude" json:"longitude"`
	TimeZone              string  `yaml:"timezone" json:"timezone"`
	CandleLightingMinutes int     `yaml:"candle_lighting_minutes" json:"candle_lighting_minutes"`
}

// HolidayConfig describes a custom holiday in the configuration file.
type HolidayConfig struct {
	Name        string       `yaml:"name"`
	Printable   string       `yaml:"printable"`
	Date        DateConfig   `yaml:"date"`
	IfNotExists []DateConfig `yaml:"if_not_exists"`
}

// DateConfig is a Hebrew month name and day.
type DateConfig struct {
	Month string `yaml:"month"`
	Day   int    `yaml:"day"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Language:  "english",
		Location:  "diaspora",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// DefaultPath returns ~/.config/heca/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "heca", "config.yaml")
	}
	return filepath.Join(home, ".config", "heca", "config.yaml")
}

// LoadEnv loads .env from the working directory if present. Variables
// already set in the environment win.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Load reads the configuration file at path, DefaultPath if empty. A missing
// file yields defaults unless explicit is set.
func Load(path string, explicit bool) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		slog.Debug("no configuration file", "path", path)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Path = path
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	slog.Info("configuration loaded", "path", path, "city", cfg.City, "cities", len(cfg.Cities), "custom_holidays", len(cfg.CustomHolidays))
	return cfg, nil
}

// normalize fills in values a partial file left empty.
func (c *Config) normalize() {
	d := Default()
	if c.Language == "" {
		c.Language = d.Language
	}
	if c.Location == "" {
		c.Location = d.Location
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := render.ParseLanguage(c.Language); err != nil {
		errs = append(errs, fmt.Errorf("language: %w", err))
	}
	if _, err := calendar.ParseLocation(c.Location); err != nil {
		errs = append(errs, fmt.Errorf("location: %w", err))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log_format must be one of: json, text; got %q", c.LogFormat))
	}

	for _, cc := range c.Cities {
		city := model.City{
			Name:                  cc.Name,
			Latitude:              cc.Latitude,
			Longitude:             cc.Longitude,
			TimeZone:              cc.TimeZone,
			CandleLightingMinutes: cc.CandleLightingMinutes,
		}
		if err := city.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("city %q: %w", cc.Name, err))
		}
	}
	if c.City != "" {
		if _, ok := c.lookup(c.City); !ok {
			errs = append(errs, fmt.Errorf("city: %w: %s", ErrUnknownCity, c.City))
		}
	}

	if _, err := c.Holidays(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func cityKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// lookup finds a city by name, ignoring case and extra spaces. Configured
// cities shadow built-in ones.
func (c *Config) lookup(name string) (CityConfig, bool) {
	key := cityKey(name)
	for i := len(c.Cities) - 1; i >= 0; i-- {
		if cityKey(c.Cities[i].Name) == key {
			return c.Cities[i], true
		}
	}
	for _, cc := range builtinCities {
		if cityKey(cc.Name) == key {
			return cc, true
		}
	}
	return CityConfig{}, false
}

// ResolveCity resolves a city by name and loads its time zone.
func (c *Config) ResolveCity(name string) (*model.City, error) {
	cc, ok := c.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCity, name)
	}
	return model.NewCity(cc.Name, cc.Latitude, cc.Longitude, cc.TimeZone, cc.CandleLightingMinutes)
}

// AllCities returns the built-in and configured cities sorted by name.
func (c *Config) AllCities() []CityConfig {
	byKey := make(map[string]CityConfig, len(builtinCities)+len(c.Cities))
	for _, cc := range builtinCities {
		byKey[cityKey(cc.Name)] = cc
	}
	for _, cc := range c.Cities {
		byKey[cityKey(cc.Name)] = cc
	}

	out := make([]CityConfig, 0, len(byKey))
	for _, cc := range byKey {
		out = append(out, cc)
	}
	slices.SortFunc(out, func(a, b CityConfig) int {
		return strings.Compare(cityKey(a.Name), cityKey(b.Name))
	})
	return out
}

// Holidays converts the configured custom holidays, parsing month names.
func (c *Config) Holidays() ([]model.CustomHoliday, error) {
	var errs []error
	out := make([]model.CustomHoliday, 0, len(c.CustomHolidays))

	for _, hc := range c.CustomHolidays {
		h := model.CustomHoliday{Name: hc.Name, Printable: hc.Printable}

		d, err := hc.Date.dayOfMonth()
		if err != nil {
			errs = append(errs, fmt.Errorf("custom holiday %q: %w", hc.Name, err))
			continue
		}
		h.Date = d

		for _, fc := range hc.IfNotExists {
			fd, err := fc.dayOfMonth()
			if err != nil {
				errs = append(errs, fmt.Errorf("custom holiday %q fallback: %w", hc.Name, err))
				continue
			}
			h.IfNotExists = append(h.IfNotExists, fd)
		}

		if err := h.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, h)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

func (d DateConfig) dayOfMonth() (model.DayOfMonth, error) {
	m, err := calendar.ParseMonth(d.Month)
	if err != nil {
		return model.DayOfMonth{}, err
	}
	return model.DayOfMonth{Month: m, Day: d.Day}, nil
}
