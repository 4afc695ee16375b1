package taskwarrior

import (
	"fmt"
	"strings"
	"time"
)

const (
	PENDING   = "pending"
	COMPLETED = "completed"
	WAITING   = "waiting"
	DELETED   = "deleted"
)

type CustomTime struct {
	time.Time
}

const taskwarriorTimeLayout = "20060102T150405Z" // YYYYMMDDTHHMMSSZ, always UTC

func (ct *CustomTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "0" {
		ct.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(taskwarriorTimeLayout, s)
	if err != nil {
		return fmt.Errorf("failed to parse Taskwarrior time string '%s': %w", s, err)
	}
	ct.Time = t
	return nil
}

func (ct CustomTime) MarshalJSON() ([]byte, error) {
	if ct.Time.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + ct.Time.Format(taskwarriorTimeLayout) + `"`), nil
}

// set reports whether ct holds a real timestamp.
func (ct *CustomTime) set() bool {
	return ct != nil && !ct.Time.IsZero()
}

type Annotation struct {
	Description string      `json:"description"`
	Entry       *CustomTime `json:"entry"`
}

type Task struct {
	UUID        string       `json:"uuid"`
	Description string       `json:"description"`
	Entry       *CustomTime  `json:"entry,omitempty"`
	Due         *CustomTime  `json:"due,omitempty"`
	Scheduled   *CustomTime  `json:"scheduled,omitempty"`
	Status      string       `json:"status"`
	Project     string       `json:"project,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`

	Start *CustomTime `json:"start,omitempty"`
	End   *CustomTime `json:"end,omitempty"`

	// UDAs configured as uda.estimate.label=est and uda.actual.label=act,
	// holding ISO 8601 durations such as "PT1H30M".
	Est string `json:"est,omitempty"`
	Act string `json:"act,omitempty"`
}
