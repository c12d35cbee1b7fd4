package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/robertmeta/heca-cli/store"
)

func listExports(c *cli.Context) error {
	s, err := getStore(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	defer s.Close()

	exports, err := s.GetAllExports()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to get exports: %v", err), ExitDataError)
	}
	if exports == nil {
		exports = []*store.Export{}
	}

	return outputJSON(c.App.Writer, exports)
}

func queryEvents(c *cli.Context) error {
	s, err := getStore(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	defer s.Close()

	opts, err := store.BuildQueryOptions(
		c.Int("limit"),
		c.Int("offset"),
		c.Int64("export-id"),
		c.String("kind"),
		c.String("from"),
		c.String("span"),
		time.Now(),
	)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Invalid query options: %v", err), ExitUsageError)
	}

	rows, err := s.Events(opts)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to get events: %v", err), ExitDataError)
	}
	if rows == nil {
		rows = []store.Row{}
	}

	return outputJSON(c.App.Writer, map[string]interface{}{
		"count":  len(rows),
		"limit":  opts.Limit,
		"offset": opts.Offset,
		"events": rows,
	})
}

func removeExport(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("Usage: heca remove <export-id>", ExitUsageError)
	}

	id, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
	if err != nil {
		return cli.Exit("Invalid export ID", ExitUsageError)
	}

	s, err := getStore(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	defer s.Close()

	if err := s.DeleteExport(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return cli.Exit(err.Error(), ExitDataError)
		}
		return cli.Exit(fmt.Sprintf("Failed to delete export: %v", err), ExitDataError)
	}

	return outputJSON(c.App.Writer, map[string]interface{}{
		"success":   true,
		"export_id": id,
	})
}
