// Package report renders an analysis as a terminal report, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/harrisonrobin/lifestyle/pkg/analyzer"
	"github.com/harrisonrobin/lifestyle/pkg/colors"
	"github.com/harrisonrobin/lifestyle/pkg/insights"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Document is the machine-readable form of a run.
type Document struct {
	Tasks       int                   `json:"tasks" yaml:"tasks"`
	DroppedRows int                   `json:"dropped_rows" yaml:"dropped_rows"`
	Insights    insights.Insights     `json:"insights" yaml:"insights"`
	WeekdayPie  []insights.PieSlice   `json:"weekday_pie" yaml:"weekday_pie"`
	WeekendPie  []insights.PieSlice   `json:"weekend_pie" yaml:"weekend_pie"`
	Compare     []insights.CompareBar `json:"weekday_vs_weekend" yaml:"weekday_vs_weekend"`
	Colors      map[string]string     `json:"colors,omitempty" yaml:"colors,omitempty"`
}

// NewDocument shapes res for output. palette may be nil.
func NewDocument(res *analyzer.Result, palette *colors.ColorCache) Document {
	in := res.Insights
	doc := Document{
		Tasks:       len(res.Tasks),
		DroppedRows: res.Dropped,
		Insights:    in,
		WeekdayPie:  insights.PieSlices(in.Weekday.TotalsByCategory),
		WeekendPie:  insights.PieSlices(in.Weekend.TotalsByCategory),
		Compare:     insights.CompareBars(in.Weekday, in.Weekend),
	}
	if palette != nil {
		doc.Colors = make(map[string]string, len(doc.Compare))
		for _, bar := range doc.Compare {
			doc.Colors[bar.Category] = palette.Color(bar.Category)
		}
	}
	return doc
}

// Render writes res to w in format.
func Render(w io.Writer, format string, res *analyzer.Result, palette *colors.ColorCache) error {
	switch format {
	case "", FormatText:
		return renderText(w, res, palette)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewDocument(res, palette))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(res, palette)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
