package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/robertmeta/heca-cli/calendar"
)

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a civil date (YYYY-MM-DD) or a Hebrew date (5780-Nisan-15)",
		ArgsUsage: "<date>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Print JSON instead of text",
			},
		},
		Action: convertDate,
	}
}

func convertDate(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("Usage: heca convert <date>", ExitUsageError)
	}
	arg := c.Args().Get(0)

	if civil, err := calendar.ParseCivil(arg); err == nil {
		conv := calendar.Convert(civil)
		if c.Bool("json") {
			return outputJSON(c.App.Writer, conv)
		}
		return writeConversion(c.App.Writer, civil.Format("2006-01-02"), conv)
	}

	date, err := calendar.ParseDate(arg)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidDate) {
			return cli.Exit(fmt.Sprintf("%v (or YYYY-MM-DD)", err), ExitUsageError)
		}
		return cli.Exit(err.Error(), ExitDataError)
	}
	span := date.Span()
	if c.Bool("json") {
		return outputJSON(c.App.Writer, span)
	}
	_, err = fmt.Fprintf(c.App.Writer, "%s: from the evening of %s until nightfall of %s\n",
		date, span.Evening.Format("2006-01-02"), span.Day.Format("2006-01-02"))
	return err
}

func writeConversion(w io.Writer, civil string, conv calendar.Conversion) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", civil, conv.Day)
	fmt.Fprintf(&b, "%s after nightfall: %s\n", civil, conv.Night)
	_, err := io.WriteString(w, b.String())
	return err
}
