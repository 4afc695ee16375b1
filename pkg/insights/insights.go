// Package insights aggregates canonical tasks into per-period totals, KPIs and
// rule-based observations.
package insights

import (
	"sort"
	"time"

	"github.com/harrisonrobin/lifestyle/pkg/keywords"
	"github.com/harrisonrobin/lifestyle/pkg/model"
	"github.com/harrisonrobin/lifestyle/pkg/util"
)

// MinExerciseMinutes is the daily exercise total that makes a day an exercise day.
const MinExerciseMinutes = 20

// PeriodTotals accumulates minutes per category over weekday or weekend days.
type PeriodTotals struct {
	Days             int            `json:"days" yaml:"days"`
	TotalsByCategory map[string]int `json:"totals_by_category" yaml:"totals_by_category"`
}

// Minutes returns the total for category, 0 when it was never seen.
func (p PeriodTotals) Minutes(category string) int {
	return p.TotalsByCategory[category]
}

// KPIs are the headline metrics, rounded for display.
type KPIs struct {
	AvgSleepHours                 float64 `json:"avg_sleep_hours" yaml:"avg_sleep_hours"`
	SleepConsistencyStdDevMinutes int     `json:"sleep_consistency_std_dev_minutes" yaml:"sleep_consistency_std_dev_minutes"`
	AvgWorkHours                  float64 `json:"avg_work_hours" yaml:"avg_work_hours"`
	ExerciseDaysPerWeek           float64 `json:"exercise_days_per_week" yaml:"exercise_days_per_week"`
	HealthVsWorkRatio             float64 `json:"health_vs_work_ratio" yaml:"health_vs_work_ratio"`
}

// SleepPoint is one day of the sleep trend.
type SleepPoint struct {
	Date    string `json:"date" yaml:"date"`
	Minutes int    `json:"minutes" yaml:"minutes"`
}

// Insights is the full result of Analyze.
type Insights struct {
	Weekday       PeriodTotals `json:"weekday" yaml:"weekday"`
	Weekend       PeriodTotals `json:"weekend" yaml:"weekend"`
	KPIs          KPIs         `json:"kpis" yaml:"kpis"`
	Strengths     []string     `json:"strengths" yaml:"strengths"`
	Opportunities []string     `json:"opportunities" yaml:"opportunities"`
	RedFlags      []string     `json:"red_flags" yaml:"red_flags"`
	SleepSeries   []SleepPoint `json:"sleep_series" yaml:"sleep_series"`
}

// dayAggregate is one calendar day of tasks.
type dayAggregate struct {
	date  time.Time
	tasks []model.Task
}

// Analyze computes insights for tasks. tasks are expected in the order Parse
// returns them; days are processed chronologically either way.
func Analyze(tasks []model.Task) Insights {
	days := groupByDay(tasks)

	weekday := PeriodTotals{TotalsByCategory: map[string]int{}}
	weekend := PeriodTotals{TotalsByCategory: map[string]int{}}
	sleepPerDay := make([]int, 0, len(days))
	sleepSeries := make([]SleepPoint, 0, len(days))
	totalWork, totalHealth, exerciseDays := 0, 0, 0

	for _, d := range days {
		target := &weekday
		if isWeekend(d.date) {
			target = &weekend
		}
		target.Days++

		categories, byCategory := util.GroupBy(d.tasks, func(t model.Task) string {
			if t.Category == "" {
				return model.DefaultCategory
			}
			return t.Category
		})
		for _, cat := range categories {
			mins := util.SumBy(byCategory[cat], taskMinutes)
			target.TotalsByCategory[cat] += mins
			if keywords.Work.Matches(cat) {
				totalWork += mins
			}
			if keywords.Health.Matches(cat) {
				totalHealth += mins
			}
		}

		if minutesWhere(d.tasks, keywords.Exercise) >= MinExerciseMinutes {
			exerciseDays++
		}

		sleep := minutesWhere(d.tasks, keywords.Sleep)
		sleepPerDay = append(sleepPerDay, sleep)
		sleepSeries = append(sleepSeries, SleepPoint{Date: d.date.Format("2006-01-02"), Minutes: sleep})
	}

	dayCount := len(days)
	weeks := float64(dayCount) / 7
	if weeks < 1 {
		weeks = 1
	}
	avgSleepMin := util.Mean(sleepPerDay)
	sleepStd := util.StdDev(sleepPerDay)
	avgWorkMin := float64(totalWork) / float64(max(1, dayCount))
	exercisePerWeek := float64(exerciseDays) / weeks
	ratio := 0.0
	if totalWork != 0 {
		ratio = float64(totalHealth) / float64(totalWork)
	}

	m := measures{
		avgSleepMinutes:     avgSleepMin,
		sleepStdDevMinutes:  sleepStd,
		avgWorkMinutes:      avgWorkMin,
		exerciseDaysPerWeek: exercisePerWeek,
		healthVsWorkRatio:   ratio,
	}
	strengths, opportunities, redFlags := evaluate(m)

	return Insights{
		Weekday: weekday,
		Weekend: weekend,
		KPIs: KPIs{
			AvgSleepHours:                 util.Round(avgSleepMin/60, 2),
			SleepConsistencyStdDevMinutes: int(util.Round(sleepStd, 0)),
			AvgWorkHours:                  util.Round(avgWorkMin/60, 2),
			ExerciseDaysPerWeek:           util.Round(exercisePerWeek, 1),
			HealthVsWorkRatio:             util.Round(ratio, 2),
		},
		Strengths:     strengths,
		Opportunities: opportunities,
		RedFlags:      redFlags,
		SleepSeries:   sleepSeries,
	}
}

// groupByDay buckets tasks by calendar day, returned in chronological order.
func groupByDay(tasks []model.Task) []dayAggregate {
	keys, groups := util.GroupBy(tasks, model.Task.DayKey)
	days := make([]dayAggregate, 0, len(keys))
	for _, k := range keys {
		list := groups[k]
		days = append(days, dayAggregate{date: list[0].Date, tasks: list})
	}
	// Input from Parse is already sorted; this only matters for hand-built slices.
	sortDays(days)
	return days
}

func sortDays(days []dayAggregate) {
	sort.SliceStable(days, func(i, j int) bool { return days[i].date.Before(days[j].date) })
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func taskMinutes(t model.Task) int { return t.DurationMinutes }

// minutesWhere sums durations of tasks whose category or name matches set.
func minutesWhere(tasks []model.Task, set keywords.Set) int {
	total := 0
	for _, t := range tasks {
		if set.MatchesAny(t.Category, t.TaskName) {
			total += t.DurationMinutes
		}
	}
	return total
}
