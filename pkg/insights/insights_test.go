package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrisonrobin/lifestyle/pkg/model"
	"github.com/harrisonrobin/lifestyle/pkg/normalize"
)

const (
	msgAdequateSleep   = "You average 7+ hours of sleep. Nice!"
	msgConsistentSleep = "Sleep schedule is fairly consistent (std dev ≤ 45 min)."
	msgRegularExercise = "Regular exercise (≥ 3 days/week). Keep it up!"
	msgMoreSleep       = "Aim for ~7–9 hours of sleep on most days."
	msgSteadierSleep   = "Try a steadier bedtime/wake window to reduce sleep variability."
	msgHealthBreaks    = "Consider adding short health breaks to balance work intensity."
	msgBurnout         = "Work time exceeds 9h/day on average. Watch for burnout."
	msgInactive        = "Very low exercise frequency. Even short walks help."
)

// 2024-01-01 is a Monday.
var monday = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func task(dayOffset int, category, name string, minutes int) model.Task {
	d := monday.AddDate(0, 0, dayOffset)
	return model.Task{
		Date:            d,
		DayOfWeek:       d.Weekday().String(),
		Category:        category,
		TaskName:        name,
		DurationMinutes: minutes,
	}
}

func TestAnalyzeSingleWorkDay(t *testing.T) {
	tasks := normalize.NewParser(time.UTC).Parse([]model.RawTaskRow{{
		Date:     model.Text("2024-01-01"),
		Category: model.Text("Work"),
		Duration: model.Text("8:00:00"),
	}})
	require.Len(t, tasks, 1)
	require.Equal(t, 480, tasks[0].DurationMinutes)

	got := Analyze(tasks)
	assert.Equal(t, 1, got.Weekday.Days)
	assert.Equal(t, 0, got.Weekend.Days)
	assert.Equal(t, 480, got.Weekday.Minutes("Work"))
	assert.Equal(t, 8.0, got.KPIs.AvgWorkHours)
	assert.Equal(t, 0.0, got.KPIs.AvgSleepHours)
	assert.Equal(t, 0.0, got.KPIs.HealthVsWorkRatio)
	assert.Equal(t, []SleepPoint{{Date: "2024-01-01", Minutes: 0}}, got.SleepSeries)
	assert.Contains(t, got.Opportunities, msgMoreSleep)
	assert.Contains(t, got.Opportunities, msgHealthBreaks)
	assert.Contains(t, got.RedFlags, msgInactive)
}

func TestAnalyzeConsistentSleepWeek(t *testing.T) {
	var rows []model.RawTaskRow
	for i := 0; i < 7; i++ {
		rows = append(rows, model.RawTaskRow{
			Date:     model.Text(monday.AddDate(0, 0, i).Format("2006-01-02")),
			Category: model.Text("Sleep"),
			Duration: model.Text("7:30:00"),
		})
	}
	got := Analyze(normalize.NewParser(time.UTC).Parse(rows))

	assert.Equal(t, 7.5, got.KPIs.AvgSleepHours)
	assert.Equal(t, 0, got.KPIs.SleepConsistencyStdDevMinutes)
	assert.Equal(t, []string{msgAdequateSleep, msgConsistentSleep}, got.Strengths)
	assert.NotContains(t, got.Opportunities, msgMoreSleep)
	assert.NotContains(t, got.Opportunities, msgSteadierSleep)
	assert.Equal(t, 5, got.Weekday.Days)
	assert.Equal(t, 2, got.Weekend.Days)
	assert.Equal(t, 5*450, got.Weekday.Minutes("Sleep"))
	assert.Equal(t, 2*450, got.Weekend.Minutes("Sleep"))
	require.Len(t, got.SleepSeries, 7)
	assert.Equal(t, "2024-01-07", got.SleepSeries[6].Date)
}

func TestAnalyzeNoExerciseOverTwoWeeks(t *testing.T) {
	var tasks []model.Task
	for i := 0; i < 14; i++ {
		tasks = append(tasks, task(i, "Work", "Email", 60))
	}
	got := Analyze(tasks)

	assert.Equal(t, 0.0, got.KPIs.ExerciseDaysPerWeek)
	assert.Contains(t, got.RedFlags, msgInactive)
	assert.Equal(t, 14, got.Weekday.Days+got.Weekend.Days)
}

func TestAnalyzeEmpty(t *testing.T) {
	got := Analyze(nil)
	assert.Zero(t, got.Weekday.Days)
	assert.Zero(t, got.Weekend.Days)
	assert.Empty(t, got.SleepSeries)
	assert.Zero(t, got.KPIs.AvgSleepHours)
	assert.Zero(t, got.KPIs.AvgWorkHours)
	assert.Zero(t, got.KPIs.HealthVsWorkRatio)
	assert.NotNil(t, got.Strengths)
}

func TestAnalyzeZeroDurations(t *testing.T) {
	got := Analyze([]model.Task{task(0, "Sleep", "", 0), task(0, "Gym", "", 0)})
	assert.Zero(t, got.KPIs.AvgSleepHours)
	assert.Zero(t, got.KPIs.ExerciseDaysPerWeek)
	assert.Equal(t, 0, got.Weekday.Minutes("Gym"))
}

func TestAnalyzeDayCountConservation(t *testing.T) {
	tasks := []model.Task{
		task(0, "Work", "", 300),
		task(0, "Sleep", "", 420),
		task(0, "Work", "", 200),
		task(5, "Chores", "", 60),
		task(6, "Sleep", "", 500),
		task(9, "", "", 10),
	}
	got := Analyze(tasks)

	assert.Equal(t, 2, got.Weekday.Days, "Jan 1 and Jan 10")
	assert.Equal(t, 2, got.Weekend.Days, "Jan 6 and Jan 7")
	assert.Equal(t, len(got.SleepSeries), got.Weekday.Days+got.Weekend.Days)
	assert.Equal(t, 500, got.Weekday.Minutes("Work"), "two work tasks on one day are summed")
	assert.Equal(t, 10, got.Weekday.Minutes(model.DefaultCategory))
}

func TestAnalyzeClassification(t *testing.T) {
	tasks := []model.Task{
		task(0, "Work", "", 600),
		task(0, "Gym", "", 60),
		task(0, "Sleep", "", 480),
		task(0, "Reading", "", 30),
	}
	got := Analyze(tasks)

	assert.Equal(t, 10.0, got.KPIs.AvgWorkHours)
	assert.Equal(t, 0.9, got.KPIs.HealthVsWorkRatio)
	assert.Equal(t, 8.0, got.KPIs.AvgSleepHours)
	assert.Contains(t, got.RedFlags, msgBurnout)
	assert.NotContains(t, got.Opportunities, msgHealthBreaks)
}

func TestAnalyzeWorkoutCountsAsWorkAndHealth(t *testing.T) {
	got := Analyze([]model.Task{task(0, "Workout", "", 60)})
	assert.Equal(t, 1.0, got.KPIs.AvgWorkHours)
	assert.Equal(t, 1.0, got.KPIs.HealthVsWorkRatio)
}

func TestAnalyzeExerciseDays(t *testing.T) {
	tasks := []model.Task{
		// day 0: 19 minutes, not enough
		task(0, "Walk", "", 19),
		// day 1: category match
		task(1, "Gym", "", 20),
		// day 2: task name match, split across two tasks
		task(2, "Personal", "Morning jog", 10),
		task(2, "Personal", "Evening walk", 15),
		// day 3: health but not exercise
		task(3, "Meditation", "", 60),
	}
	got := Analyze(tasks)
	// 2 exercise days over 4 days, weeks floored at 1
	assert.Equal(t, 2.0, got.KPIs.ExerciseDaysPerWeek)
	assert.NotContains(t, got.RedFlags, msgInactive)
	assert.NotContains(t, got.Strengths, msgRegularExercise)
}

func TestAnalyzeExerciseDaysPerWeekScalesWithWeeks(t *testing.T) {
	var tasks []model.Task
	for i := 0; i < 14; i++ {
		if i%2 == 0 {
			tasks = append(tasks, task(i, "Running", "", 30))
		} else {
			tasks = append(tasks, task(i, "Work", "", 30))
		}
	}
	got := Analyze(tasks)
	assert.Equal(t, 3.5, got.KPIs.ExerciseDaysPerWeek)
	assert.Contains(t, got.Strengths, msgRegularExercise)
}

func TestAnalyzeSleepFromTaskName(t *testing.T) {
	got := Analyze([]model.Task{
		task(0, "Personal", "Afternoon sleep", 30),
		task(1, "Rest", "Sleep", 60),
	})
	assert.Equal(t, []SleepPoint{{"2024-01-01", 30}, {"2024-01-02", 60}}, got.SleepSeries)
	assert.Equal(t, 0.75, got.KPIs.AvgSleepHours)
	assert.Equal(t, 15, got.KPIs.SleepConsistencyStdDevMinutes)
}

func TestAnalyzeSleepVariability(t *testing.T) {
	got := Analyze([]model.Task{
		task(0, "Sleep", "", 300),
		task(1, "Sleep", "", 540),
	})
	assert.Equal(t, 120, got.KPIs.SleepConsistencyStdDevMinutes)
	assert.Contains(t, got.Opportunities, msgSteadierSleep)
	assert.NotContains(t, got.Strengths, msgConsistentSleep)
}

func TestAnalyzeUnsortedInputIsChronological(t *testing.T) {
	got := Analyze([]model.Task{
		task(2, "Sleep", "", 400),
		task(0, "Sleep", "", 420),
		task(1, "Sleep", "", 410),
	})
	require.Len(t, got.SleepSeries, 3)
	assert.Equal(t, "2024-01-01", got.SleepSeries[0].Date)
	assert.Equal(t, "2024-01-02", got.SleepSeries[1].Date)
	assert.Equal(t, "2024-01-03", got.SleepSeries[2].Date)
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	rows := []model.RawTaskRow{
		{Date: model.Serial(45292), Category: model.Text("Work"), Duration: model.Serial(0.4)},
		{Date: model.Serial(45293), Category: model.Text("Sleep"), Duration: model.Text("7h 10m")},
		{Date: model.Serial(45297), Category: model.Text("Gym"), Duration: model.Text("0:45:00")},
		{Date: model.Text("bogus"), Category: model.Text("Work")},
	}
	p := normalize.NewParser(time.UTC)
	first := Analyze(p.Parse(rows))
	second := Analyze(p.Parse(rows))
	assert.Equal(t, first, second)
}

func TestEvaluateThresholds(t *testing.T) {
	cases := []struct {
		name          string
		m             measures
		strengths     []string
		opportunities []string
		redFlags      []string
	}{
		{
			name:          "boundaries inclusive on strengths",
			m:             measures{avgSleepMinutes: 420, sleepStdDevMinutes: 45, exerciseDaysPerWeek: 3, healthVsWorkRatio: 0.25, avgWorkMinutes: 540},
			strengths:     []string{msgAdequateSleep, msgConsistentSleep, msgRegularExercise},
			opportunities: []string{},
			redFlags:      []string{},
		},
		{
			name:          "gap between 45 and 60 fires nothing",
			m:             measures{avgSleepMinutes: 480, sleepStdDevMinutes: 60, exerciseDaysPerWeek: 1, healthVsWorkRatio: 1},
			strengths:     []string{msgAdequateSleep},
			opportunities: []string{},
			redFlags:      []string{},
		},
		{
			name:          "everything bad",
			m:             measures{avgSleepMinutes: 419, sleepStdDevMinutes: 61, exerciseDaysPerWeek: 0.9, healthVsWorkRatio: 0.1, avgWorkMinutes: 541},
			strengths:     []string{},
			opportunities: []string{msgMoreSleep, msgSteadierSleep, msgHealthBreaks},
			redFlags:      []string{msgBurnout, msgInactive},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, o, r := evaluate(c.m)
			assert.Equal(t, c.strengths, s)
			assert.Equal(t, c.opportunities, o)
			assert.Equal(t, c.redFlags, r)
		})
	}
}
