package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/robertmeta/heca-cli/model"
)

// RSSDocument is the root of an RSS 2.0 feed.
type RSSDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel RSSChannel `xml:"channel"`
}

// RSSChannel holds the feed metadata and items.
type RSSChannel struct {
	Title         string    `xml:"title"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language,omitempty"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []RSSItem `xml:"item"`
}

// RSSItem is one event.
type RSSItem struct {
	Title       string  `xml:"title"`
	Description string  `xml:"description,omitempty"`
	Category    string  `xml:"category,omitempty"`
	GUID        RSSGUID `xml:"guid"`
	PubDate     string  `xml:"pubDate"`
}

// RSSGUID identifies an item without claiming to be a URL.
type RSSGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

// RSS writes the events as an RSS 2.0 feed. Each item is published at the
// evening instant its day begins.
func RSS(w io.Writer, events []model.Event, opts FeedOptions) error {
	doc := RSSDocument{
		Version: "2.0",
		Channel: RSSChannel{
			Title:         opts.title(),
			Description:   opts.title(),
			Language:      "en",
			LastBuildDate: opts.generated().Format(time.RFC1123Z),
			Items:         make([]RSSItem, 0, len(events)),
		},
	}
	if opts.Language == Hebrew {
		doc.Channel.Language = "he"
	}

	for i, e := range events {
		doc.Channel.Items = append(doc.Channel.Items, RSSItem{
			Title:       Label(e.Name, opts.Language),
			Description: candleText(e, opts.Language),
			Category:    e.Name.Kind().String(),
			GUID:        RSSGUID{Value: fmt.Sprintf("heca-%s-%d", e.Day.UTC().Format("20060102"), i)},
			PubDate:     e.Day.UTC().Format(time.RFC1123Z),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write XML header: %w", err)
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode RSS: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write final newline: %w", err)
	}
	return nil
}
