package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/robertmeta/heca-cli/model"
)

// TextOptions controls line rendering.
type TextOptions struct {
	Language Language
	// Pretty styles the date, label and candle-lighting parts for a terminal.
	Pretty bool
}

var (
	dateStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	candleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	kindStyles  = map[model.LabelKind]lipgloss.Style{
		model.KindTorahReading:     lipgloss.NewStyle().Bold(true),
		model.KindMinorHoliday:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		model.KindCustomHoliday:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		model.KindStudy:            lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		model.KindIsraeliHoliday:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		model.KindChabadHoliday:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		model.KindShabbosMevarchim: lipgloss.NewStyle().Italic(true),
	}
)

// Text writes one line per event: "Night of Y/M/D: label", followed by the
// candle-lighting time on Shabbos and Yom Tov eves.
func Text(w io.Writer, events []model.Event, opts TextOptions) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	for _, e := range events {
		if _, err := io.WriteString(bw, Line(e, opts)+"\n"); err != nil {
			return fmt.Errorf("failed to write event: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// Line renders a single event without a trailing newline.
func Line(e model.Event, opts TextOptions) string {
	night, candles := "Night of", "Candle lighting"
	if opts.Language == Hebrew {
		night, candles = "ליל", "הדלקת נרות"
	}

	date := fmt.Sprintf("%s %d/%d/%d", night, e.Day.Year(), int(e.Day.Month()), e.Day.Day())
	label := Label(e.Name, opts.Language)

	candle := ""
	if e.CandleLighting.Applicable() {
		candle = candles
		if t, ok := e.CandleLighting.Time(); ok {
			candle += " " + t.Format("15:04")
		}
	}

	if opts.Pretty {
		date = dateStyle.Render(date)
		label = kindStyles[e.Name.Kind()].Render(label)
		if candle != "" {
			candle = candleStyle.Render(candle)
		}
	}

	line := date + ": " + label
	if candle != "" {
		line += ", " + candle
	}
	return line
}
