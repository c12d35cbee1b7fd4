package config

import (
	"os"
	"path/filepath"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertmeta/heca-cli/calendar"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), true)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
language: he-IL
location: israel
city: Efrat
log_level: debug
cities:
  - name: Efrat
    latitude: 31.6534
    longitude: 35.1497
    timezone: Asia/Jerusalem
    candle_lighting_minutes: 30
custom_holidays:
  - name: Birthday
    printable: Yossi's birthday
    date: {month: Adar2, day: 14}
    if_not_exists:
      - {month: Adar, day: 14}
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, "he-IL", cfg.Language)
	assert.Equal(t, "israel", cfg.Location)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat, "unset fields take defaults")

	city, err := cfg.ResolveCity("efrat")
	require.NoError(t, err)
	assert.Equal(t, "Efrat", city.Name)
	assert.Equal(t, 30, city.CandleLightingMinutes)
	assert.Equal(t, "Asia/Jerusalem", city.Location().String())

	holidays, err := cfg.Holidays()
	require.NoError(t, err)
	require.Len(t, holidays, 1)
	assert.Equal(t, "Birthday", holidays[0].Name)
	assert.Equal(t, calendar.Adar2, holidays[0].Date.Month)
	assert.Equal(t, 14, holidays[0].Date.Day)
	require.Len(t, holidays[0].IfNotExists, 1)
	assert.Equal(t, calendar.Adar, holidays[0].IfNotExists[0].Month)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "language: [english\n")
	_, err := Load(path, true)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{
			name:   "defaults",
			modify: func(c *Config) {},
		},
		{
			name:    "unknown language",
			modify:  func(c *Config) { c.Language = "klingon" },
			wantErr: "language",
		},
		{
			name:    "unknown location",
			modify:  func(c *Config) { c.Location = "mars" },
			wantErr: "location",
		},
		{
			name:    "bad log level",
			modify:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "log_level",
		},
		{
			name:    "bad log format",
			modify:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: "log_format",
		},
		{
			name:    "unknown city",
			modify:  func(c *Config) { c.City = "Atlantis" },
			wantErr: "unknown city",
		},
		{
			name: "bad city coordinates",
			modify: func(c *Config) {
				c.Cities = []CityConfig{{Name: "Nowhere", Latitude: 100, TimeZone: "UTC"}}
			},
			wantErr: "latitude",
		},
		{
			name: "bad holiday month",
			modify: func(c *Config) {
				c.CustomHolidays = []HolidayConfig{{Name: "x", Printable: "x", Date: DateConfig{Month: "Smarch", Day: 1}}}
			},
			wantErr: "unknown month",
		},
		{
			name: "bad holiday day",
			modify: func(c *Config) {
				c.CustomHolidays = []HolidayConfig{{Name: "x", Printable: "x", Date: DateConfig{Month: "Nisan", Day: 31}}}
			},
			wantErr: "day must be between",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	cfg.LogFormat = "yaml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
	assert.Contains(t, err.Error(), "log_format")
}

func TestCity(t *testing.T) {
	cfg := Default()

	city, err := cfg.ResolveCity("  jerusalem ")
	require.NoError(t, err)
	assert.Equal(t, 40, city.CandleLightingMinutes)

	city, err = cfg.ResolveCity("new   york")
	require.NoError(t, err)
	assert.Equal(t, 18, city.CandleLightingMinutes)
	assert.Equal(t, "America/New_York", city.Location().String())

	_, err = cfg.ResolveCity("Atlantis")
	assert.ErrorIs(t, err, ErrUnknownCity)
}

func TestCity_ConfiguredShadowsBuiltin(t *testing.T) {
	cfg := Default()
	cfg.Cities = []CityConfig{{Name: "London", Latitude: 51.5, Longitude: -0.1, TimeZone: "Europe/London", CandleLightingMinutes: 15}}

	city, err := cfg.ResolveCity("London")
	require.NoError(t, err)
	assert.Equal(t, 15, city.CandleLightingMinutes)

	all := cfg.AllCities()
	assert.Len(t, all, len(builtinCities))
	for i := 1; i < len(all); i++ {
		assert.Less(t, cityKey(all[i-1].Name), cityKey(all[i].Name))
	}
}

func TestBuiltinCities_Valid(t *testing.T) {
	cfg := Default()
	for _, cc := range builtinCities {
		_, err := cfg.ResolveCity(cc.Name)
		assert.NoError(t, err, cc.Name)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HECA_TEST_CITY=Haifa\n"), 0o600))
	chdir(t, dir)
	t.Cleanup(func() { os.Unsetenv("HECA_TEST_CITY") })

	require.NoError(t, LoadEnv())
	assert.Equal(t, "Haifa", os.Getenv("HECA_TEST_CITY"))
}

func TestLoadEnv_NoFile(t *testing.T) {
	chdir(t, t.TempDir())
	assert.NoError(t, LoadEnv())
}

// chdir changes the working directory for the rest of the test and restores
// it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
