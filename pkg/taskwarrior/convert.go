package taskwarrior

import (
	"strings"
	"time"

	"github.com/harrisonrobin/lifestyle/pkg/logger"
	"github.com/harrisonrobin/lifestyle/pkg/model"
	"github.com/harrisonrobin/lifestyle/pkg/util"
)

// ToRows turns Taskwarrior tasks into "Daily Tasks" rows. Timestamps are
// moved into loc (time.Local when nil) so tasks land on the user's calendar
// day. Deleted tasks are skipped.
//
// The row date is the first of start, scheduled, end, due and entry that is
// set. Duration comes from the act UDA, then end minus start, then est.
func ToRows(tasks []Task, loc *time.Location) []model.RawTaskRow {
	if loc == nil {
		loc = time.Local
	}

	rows := make([]model.RawTaskRow, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == DELETED {
			continue
		}
		rows = append(rows, toRow(t, loc))
	}
	return rows
}

func toRow(t Task, loc *time.Location) model.RawTaskRow {
	r := model.RawTaskRow{
		Category: model.Text(t.Project),
		TaskName: model.Text(t.Description),
		Start:    instant(t.Start, loc),
		End:      instant(t.End, loc),
		Duration: duration(t),
		Comments: comments(t.Annotations),
	}
	for _, ct := range []*CustomTime{t.Start, t.Scheduled, t.End, t.Due, t.Entry} {
		if ct.set() {
			r.Date = model.Instant(ct.Time.In(loc))
			r.DayOfWeek = model.Text(ct.Time.In(loc).Weekday().String())
			break
		}
	}
	return r
}

func instant(ct *CustomTime, loc *time.Location) model.Value {
	if !ct.set() {
		return model.Empty()
	}
	return model.Instant(ct.Time.In(loc))
}

func duration(t Task) model.Value {
	if t.Act != "" {
		if d, err := util.ParseDuration(t.Act); err == nil {
			return minutesText(d)
		}
		logger.Debug("ignoring unparseable act duration", "uuid", t.UUID, "act", t.Act)
	}
	if t.Start.set() && t.End.set() && t.End.Time.After(t.Start.Time) {
		return minutesText(t.End.Time.Sub(t.Start.Time))
	}
	if t.Est != "" {
		if d, err := util.ParseDuration(t.Est); err == nil {
			return minutesText(d)
		}
		logger.Debug("ignoring unparseable est duration", "uuid", t.UUID, "est", t.Est)
	}
	return model.Empty()
}

// minutesText renders d in the "7h 05m" form the normalizer reads back.
func minutesText(d time.Duration) model.Value {
	return model.Text(util.FormatMinutes(int(d.Round(time.Minute) / time.Minute)))
}

func comments(annotations []Annotation) model.Value {
	if len(annotations) == 0 {
		return model.Empty()
	}
	parts := make([]string, 0, len(annotations))
	for _, a := range annotations {
		if s := strings.TrimSpace(a.Description); s != "" {
			parts = append(parts, s)
		}
	}
	return model.Text(strings.Join(parts, "; "))
}
