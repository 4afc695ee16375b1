package model

import "time"

// DefaultCategory is used for rows whose category is blank.
const DefaultCategory = "Uncategorized"

// RawTaskRow is one row of the "Daily Tasks" sheet before normalization.
// JSON tags follow the sheet's column headers.
type RawTaskRow struct {
	Date      Value `json:"Date"`
	DayOfWeek Value `json:"Day Of Week"`
	Category  Value `json:"Task Category"`
	TaskName  Value `json:"Task"`
	Start     Value `json:"Start"`
	Duration  Value `json:"Duration"`
	End       Value `json:"End"`
	Comments  Value `json:"Comments"`
}

// Task is a normalized row.
type Task struct {
	// Date is midnight of the calendar day the task belongs to.
	Date            time.Time  `json:"date" yaml:"date"`
	DayOfWeek       string     `json:"day_of_week" yaml:"day_of_week"`
	Category        string     `json:"category" yaml:"category"`
	TaskName        string     `json:"task" yaml:"task"`
	Start           *time.Time `json:"start,omitempty" yaml:"start,omitempty"`
	End             *time.Time `json:"end,omitempty" yaml:"end,omitempty"`
	DurationMinutes int        `json:"duration_minutes" yaml:"duration_minutes"`
	Comments        string     `json:"comments,omitempty" yaml:"comments,omitempty"`
}

// DayKey identifies the task's calendar day.
func (t Task) DayKey() string {
	return t.Date.Format("2006-01-02")
}
