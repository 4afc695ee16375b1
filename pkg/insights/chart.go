package insights

import (
	"math"
	"sort"

	"github.com/harrisonrobin/lifestyle/pkg/util"
)

// MaxPieSlices caps how many categories a pie chart shows.
const MaxPieSlices = 10

// PieSlice is one category of a period pie chart.
type PieSlice struct {
	Category string `json:"category" yaml:"category"`
	Hours    int    `json:"hours" yaml:"hours"`
}

// CompareBar is one category of the weekday vs weekend chart.
type CompareBar struct {
	Category     string  `json:"category" yaml:"category"`
	WeekdayHours float64 `json:"weekday_hours" yaml:"weekday_hours"`
	WeekendHours float64 `json:"weekend_hours" yaml:"weekend_hours"`
}

// PieSlices converts category minutes to whole hours, largest first, keeping
// at most MaxPieSlices. Ties are ordered by category name.
func PieSlices(totals map[string]int) []PieSlice {
	slices := make([]PieSlice, 0, len(totals))
	for cat, mins := range totals {
		slices = append(slices, PieSlice{Category: cat, Hours: int(math.Round(float64(mins) / 60))})
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Hours != slices[j].Hours {
			return slices[i].Hours > slices[j].Hours
		}
		return slices[i].Category < slices[j].Category
	})
	if len(slices) > MaxPieSlices {
		slices = slices[:MaxPieSlices]
	}
	return slices
}

// CompareBars pairs weekday and weekend hours for every category seen in
// either period, sorted by category.
func CompareBars(weekday, weekend PeriodTotals) []CompareBar {
	seen := map[string]struct{}{}
	for cat := range weekday.TotalsByCategory {
		seen[cat] = struct{}{}
	}
	for cat := range weekend.TotalsByCategory {
		seen[cat] = struct{}{}
	}
	cats := make([]string, 0, len(seen))
	for cat := range seen {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	bars := make([]CompareBar, 0, len(cats))
	for _, cat := range cats {
		bars = append(bars, CompareBar{
			Category:     cat,
			WeekdayHours: util.Round(float64(weekday.Minutes(cat))/60, 2),
			WeekendHours: util.Round(float64(weekend.Minutes(cat))/60, 2),
		})
	}
	return bars
}
