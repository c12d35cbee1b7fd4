package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	_ "time/tzdata"

	"github.com/urfave/cli/v2"

	"github.com/robertmeta/heca-cli/config"
	"github.com/robertmeta/heca-cli/logger"
	"github.com/robertmeta/heca-cli/store"
)

const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
	ExitDataError    = 3
)

const configKey = "config"

func main() {
	// .env has to be in the environment before flags read their EnvVars.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitDataError)
	}

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitGeneralError)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "heca",
		Usage:   "Hebrew calendar: holidays, Torah readings, study cycles and candle lighting",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Configuration file (default: ~/.config/heca/config.yaml)",
				EnvVars: []string{"HECA_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: debug, info, warn, error",
				EnvVars: []string{"HECA_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format: text, json",
				EnvVars: []string{"HECA_LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Value:   getDefaultDBPath(),
				Usage:   "Database file path for sqlite output and stored exports",
				EnvVars: []string{"HECA_DB"},
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			listCommand(),
			convertCommand(),
			{
				Name:   "cities",
				Usage:  "List the cities available for candle-lighting times",
				Action: listCities,
			},
			{
				Name:   "exports",
				Usage:  "List event lists stored in the database",
				Action: listExports,
			},
			{
				Name:  "query",
				Usage: "Query stored events",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"l"},
						Value:   50,
						Usage:   "Maximum number of events to return",
					},
					&cli.IntFlag{
						Name:    "offset",
						Aliases: []string{"o"},
						Usage:   "Offset for pagination",
					},
					&cli.Int64Flag{
						Name:    "export-id",
						Aliases: []string{"e"},
						Usage:   "Only events of this export",
					},
					&cli.StringFlag{
						Name:    "kind",
						Aliases: []string{"k"},
						Usage:   "Filter by event kind (e.g., TorahReading, MinorHoliday, Study)",
					},
					&cli.StringFlag{
						Name:    "from",
						Aliases: []string{"f"},
						Usage:   "First civil date, YYYY-MM-DD or today",
					},
					&cli.StringFlag{
						Name:    "span",
						Aliases: []string{"s"},
						Usage:   "Length of the range (e.g., 7d, 2w, 3m, 1y)",
					},
				},
				Action: queryEvents,
			},
			{
				Name:      "remove",
				Usage:     "Remove a stored export",
				ArgsUsage: "<export-id>",
				Action:    removeExport,
			},
		},
	}
}

// setup configures logging and loads the configuration file.
func setup(c *cli.Context) error {
	path := c.String("config")
	cfg, err := config.Load(path, c.IsSet("config"))
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	c.App.Metadata = map[string]interface{}{configKey: cfg}
	return nil
}

func getConfig(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

func getDefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "heca.db"
	}
	return filepath.Join(home, ".config", "heca", "heca.db")
}

func getStore(c *cli.Context) (*store.Store, error) {
	dbPath := c.String("db")

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	s, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return s, nil
}

func outputJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func listCities(c *cli.Context) error {
	return outputJSON(c.App.Writer, getConfig(c).AllCities())
}
