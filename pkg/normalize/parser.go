// Package normalize turns loosely typed "Daily Tasks" rows into canonical
// tasks. Malformed fields never fail the batch: a row without a usable date is
// dropped, an unreadable time is left unset and an unreadable duration is 0.
package normalize

import (
	"sort"
	"strings"
	"time"

	"github.com/harrisonrobin/lifestyle/pkg/model"
)

// Parser normalizes rows. Serial and textual dates without an explicit offset
// are read as wall-clock times in the parser's location.
type Parser struct {
	loc *time.Location
}

// NewParser returns a Parser reading dates in loc. A nil loc means time.Local.
func NewParser(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.Local
	}
	return &Parser{loc: loc}
}

// Parse normalizes rows with a Parser in time.Local.
func Parse(rows []model.RawTaskRow) []model.Task {
	return NewParser(time.Local).Parse(rows)
}

// Parse converts rows to tasks sorted by day. Tasks on the same day keep their
// row order.
func (p *Parser) Parse(rows []model.RawTaskRow) []model.Task {
	tasks := make([]model.Task, 0, len(rows))
	for _, r := range rows {
		if task, ok := p.ParseRow(r); ok {
			tasks = append(tasks, task)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Date.Before(tasks[j].Date)
	})
	return tasks
}

// ParseRow normalizes a single row. ok is false when the row has no usable date.
func (p *Parser) ParseRow(r model.RawTaskRow) (task model.Task, ok bool) {
	day, ok := p.resolveDate(r.Date)
	if !ok {
		return model.Task{}, false
	}

	dow := strings.TrimSpace(r.DayOfWeek.String())
	if dow == "" {
		dow = day.Weekday().String()
	}

	category := strings.TrimSpace(r.Category.String())
	if category == "" {
		category = model.DefaultCategory
	}

	return model.Task{
		Date:            day,
		DayOfWeek:       dow,
		Category:        category,
		TaskName:        strings.TrimSpace(r.TaskName.String()),
		Start:           p.resolveTime(day, r.Start),
		End:             p.resolveTime(day, r.End),
		DurationMinutes: durationMinutes(r.Duration),
		Comments:        r.Comments.String(),
	}, true
}
