// Package analyzer runs the normalize -> insights pipeline over rows decoded by
// one of the row sources (workbook, Google Sheets, JSON, Taskwarrior).
package analyzer

import (
	"errors"
	"time"

	"github.com/harrisonrobin/lifestyle/pkg/insights"
	"github.com/harrisonrobin/lifestyle/pkg/logger"
	"github.com/harrisonrobin/lifestyle/pkg/model"
	"github.com/harrisonrobin/lifestyle/pkg/normalize"
)

// ErrNoRows is returned when the source produced no rows at all. It is the
// only fatal condition of a run; rows that fail to normalize are dropped
// without error.
var ErrNoRows = errors.New("the 'Daily Tasks' sheet is empty")

// Result is everything a renderer needs.
type Result struct {
	Tasks    []model.Task      `json:"tasks" yaml:"tasks"`
	Dropped  int               `json:"dropped_rows" yaml:"dropped_rows"`
	Insights insights.Insights `json:"insights" yaml:"insights"`
}

// Options configure a run.
type Options struct {
	// Location dates are read in; nil means time.Local.
	Location *time.Location
	// Logger receives run diagnostics; nil means the default logger.
	Logger logger.Logger
}

// Run normalizes rows and analyzes the resulting tasks.
func Run(rows []model.RawTaskRow, opts Options) (*Result, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}

	tasks := normalize.NewParser(opts.Location).Parse(rows)
	dropped := len(rows) - len(tasks)
	if dropped > 0 {
		log.Debug("dropped rows without a usable date", "dropped", dropped, "rows", len(rows))
	}
	if len(tasks) == 0 {
		log.Warn("no row had a usable date", "rows", len(rows))
	}

	return &Result{
		Tasks:    tasks,
		Dropped:  dropped,
		Insights: insights.Analyze(tasks),
	}, nil
}
