package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/robertmeta/heca-cli/calendar"
	"github.com/robertmeta/heca-cli/config"
	"github.com/robertmeta/heca-cli/list"
	"github.com/robertmeta/heca-cli/model"
	"github.com/robertmeta/heca-cli/render"
	"github.com/robertmeta/heca-cli/store"
)

var outputFormats = []string{"regular", "pretty", "json", "cbor", "ics", "rss", "sqlite"}

const defaultEvents = "yomtov,chol,shabbos,special"

func listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List the events of one or more years",
		ArgsUsage: "<year>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "calendar",
				Usage: "Calendar the year is counted in: hebrew or gregorian (default: hebrew above 3000)",
			},
			&cli.IntFlag{
				Name:    "amount",
				Aliases: []string{"n"},
				Value:   1,
				Usage:   "Number of years to list",
			},
			&cli.BoolFlag{
				Name:  "no-sort",
				Usage: "Keep generation order instead of sorting by day",
			},
			&cli.StringFlag{
				Name:    "location",
				Usage:   "diaspora or israel",
				EnvVars: []string{"HECA_LOCATION"},
			},
			&cli.StringFlag{
				Name:    "events",
				Aliases: []string{"e"},
				Value:   defaultEvents,
				Usage:   "Comma-separated: yomtov,chol,shabbos,special,omer,minor,israeli,chabad,mevarchim,dafyomi,rambam1,rambam3,yerushalmi,custom",
			},
			&cli.StringFlag{
				Name:    "city",
				Aliases: []string{"c"},
				Usage:   "City for candle-lighting times (see: heca cities)",
				EnvVars: []string{"HECA_CITY"},
			},
			&cli.StringFlag{
				Name:    "language",
				Aliases: []string{"l"},
				Usage:   "english, hebrew or a language tag such as he-IL",
				EnvVars: []string{"HECA_LANGUAGE"},
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "regular",
				Usage:   "Output format: " + strings.Join(outputFormats, ", "),
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Output file (default: stdout)",
			},
			&cli.StringFlag{
				Name:  "title",
				Usage: "Calendar or feed title for ics and rss output",
			},
			&cli.BoolFlag{
				Name:  "exact-days",
				Usage: "Do not move Yom HaShoah, Yom HaZikaron and Yom HaAtzmaut off Shabbos",
			},
		},
		Action: listEvents,
	}
}

// parseEvents builds a selection from the --events list. Custom holidays
// come from the configuration and are only included when "custom" is named.
func parseEvents(s string, cfg *config.Config) (*model.Selection, error) {
	sel := &model.Selection{}
	for _, raw := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(raw))
		switch name {
		case "":
		case "yomtov":
			sel.Categories = append(sel.Categories, calendar.YomTov)
		case "chol":
			sel.Categories = append(sel.Categories, calendar.Chol)
		case "shabbos", "shabbat":
			sel.Categories = append(sel.Categories, calendar.Shabbos)
		case "special", "specialparsha":
			sel.Categories = append(sel.Categories, calendar.SpecialParsha)
		case "omer":
			sel.Omer = true
		case "minor":
			sel.Minor = true
		case "israeli":
			sel.Israeli = true
		case "chabad":
			sel.Chabad = true
		case "mevarchim":
			sel.ShabbosMevarchim = true
		case "dafyomi":
			sel.Study = append(sel.Study, model.DafYomi)
		case "rambam1":
			sel.Study = append(sel.Study, model.RambamOneChapter)
		case "rambam3":
			sel.Study = append(sel.Study, model.RambamThreeChapters)
		case "yerushalmi":
			sel.Study = append(sel.Study, model.YerushalmiYomi)
		case "custom":
			holidays, err := cfg.Holidays()
			if err != nil {
				return nil, err
			}
			sel.CustomHolidays = holidays
		default:
			return nil, fmt.Errorf("unknown event type %q", raw)
		}
	}
	return sel, nil
}

// parseRequest reads the year argument and span flags.
func parseRequest(c *cli.Context) (list.Request, error) {
	if c.NArg() < 1 {
		return list.Request{}, errors.New("Usage: heca list <year>")
	}
	year, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return list.Request{}, fmt.Errorf("invalid year %q", c.Args().Get(0))
	}

	req := list.Request{
		Kind:   list.DetectYearKind(year),
		Year:   year,
		Amount: c.Int("amount"),
		NoSort: c.Bool("no-sort"),
	}
	switch strings.ToLower(c.String("calendar")) {
	case "":
	case "hebrew":
		req.Kind = list.Hebrew
	case "gregorian":
		req.Kind = list.Gregorian
	default:
		return req, fmt.Errorf("unknown calendar %q (expected hebrew or gregorian)", c.String("calendar"))
	}
	return req, nil
}

// setting returns the flag value when given on the command line or in the
// environment, the configured value otherwise.
func setting(c *cli.Context, flag, configured string) string {
	if c.IsSet(flag) {
		return c.String(flag)
	}
	return configured
}

func listEvents(c *cli.Context) error {
	cfg := getConfig(c)

	req, err := parseRequest(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitUsageError)
	}
	if err := req.Validate(); err != nil {
		if errors.Is(err, calendar.ErrInvalidYear) {
			return cli.Exit(err.Error(), ExitDataError)
		}
		return cli.Exit(err.Error(), ExitUsageError)
	}

	format := strings.ToLower(c.String("output"))
	if !validFormat(format) {
		return cli.Exit(fmt.Sprintf("unknown output format %q (expected one of: %s)", format, strings.Join(outputFormats, ", ")), ExitUsageError)
	}

	lang, err := render.ParseLanguage(setting(c, "language", cfg.Language))
	if err != nil {
		return cli.Exit(err.Error(), ExitUsageError)
	}
	loc, err := calendar.ParseLocation(setting(c, "location", cfg.Location))
	if err != nil {
		return cli.Exit(err.Error(), ExitUsageError)
	}

	sel, err := parseEvents(c.String("events"), cfg)
	if err != nil {
		return cli.Exit(err.Error(), ExitUsageError)
	}
	sel.Location = loc
	sel.ExactDays = c.Bool("exact-days")

	if name := setting(c, "city", cfg.City); name != "" {
		city, err := cfg.ResolveCity(name)
		if errors.Is(err, config.ErrUnknownCity) {
			return cli.Exit(err.Error(), ExitUsageError)
		}
		if err != nil {
			return cli.Exit(err.Error(), ExitDataError)
		}
		sel.City = city
	}

	start := time.Now()
	events, err := list.Run(req, sel)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidYear) {
			return cli.Exit(err.Error(), ExitDataError)
		}
		return cli.Exit(fmt.Sprintf("Failed to generate events: %v", err), ExitGeneralError)
	}
	slog.Info("generation finished", "events", len(events), "elapsed", time.Since(start))

	if format == "sqlite" {
		return exportEvents(c, req, lang, events)
	}

	path := c.String("file")
	if path == "" {
		if err := writeEvents(c.App.Writer, format, events, lang, c.String("title")); err != nil {
			return cli.Exit(err.Error(), ExitDataError)
		}
		return nil
	}
	if err := writeFile(path, format, events, lang, c.String("title")); err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	return nil
}

// writeFile renders events to path. A failed close is reported since it can
// lose buffered output.
func writeFile(path, format string, events []model.Event, lang render.Language, title string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeEvents(file, format, events, lang, title); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

func validFormat(format string) bool {
	for _, f := range outputFormats {
		if f == format {
			return true
		}
	}
	return false
}

// writeEvents renders events in any format except sqlite.
func writeEvents(w io.Writer, format string, events []model.Event, lang render.Language, title string) error {
	feed := render.FeedOptions{Language: lang, Title: title}
	switch format {
	case "regular":
		return render.Text(w, events, render.TextOptions{Language: lang})
	case "pretty":
		return render.Text(w, events, render.TextOptions{Language: lang, Pretty: true})
	case "json":
		return render.JSON(w, events)
	case "cbor":
		return render.CBOR(w, events)
	case "ics":
		return render.ICS(w, events, feed)
	case "rss":
		return render.RSS(w, events, feed)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func exportEvents(c *cli.Context, req list.Request, lang render.Language, events []model.Event) error {
	s, err := getStore(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	defer s.Close()

	export := &store.Export{
		Calendar: req.Kind.String(),
		Year:     req.Year,
		Amount:   req.Amount,
		Language: lang,
	}
	if err := s.SaveExport(export, events); err != nil {
		return cli.Exit(fmt.Sprintf("Failed to save events: %v", err), ExitDataError)
	}
	slog.Info("export written", "path", c.String("db"), "export_id", export.ID, "rows", export.Count)

	return outputJSON(c.App.Writer, map[string]interface{}{
		"success":   true,
		"db":        c.String("db"),
		"export_id": export.ID,
		"count":     export.Count,
	})
}
