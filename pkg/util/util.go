package util

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

var isoDurationPart = regexp.MustCompile(`(\d+)([HMS])`)

// ParseDuration parses ISO 8601 duration format (PT1H30M) from Taskwarrior JSON export
func ParseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}

	if len(s) < 2 || s[0] != 'P' {
		return 0, fmt.Errorf("invalid ISO 8601 duration format: %s", s)
	}

	s = s[1:]
	if len(s) == 0 || s[0] != 'T' {
		return 0, fmt.Errorf("invalid ISO 8601 duration (missing T): P%s", s)
	}
	s = s[1:]

	var total time.Duration
	for _, match := range isoDurationPart.FindAllStringSubmatch(s, -1) {
		value, _ := strconv.Atoi(match[1])
		switch match[2] {
		case "H":
			total += time.Duration(value) * time.Hour
		case "M":
			total += time.Duration(value) * time.Minute
		case "S":
			total += time.Duration(value) * time.Second
		}
	}

	if total == 0 {
		return 0, fmt.Errorf("invalid ISO 8601 duration: PT%s", s)
	}

	return total, nil
}

// FormatMinutes renders a minute count as "7h 05m".
func FormatMinutes(m int) string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%dh %02dm", sign, m/60, m%60)
}

// Round rounds x to the given number of decimal places, halves away from
// zero. Scaling happens in binary floating point, so a value like 1.005 is
// already just below the half and rounds down to 1.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// SumBy adds up sel over items.
func SumBy[T any](items []T, sel func(T) int) int {
	total := 0
	for _, it := range items {
		total += sel(it)
	}
	return total
}

// Mean returns the arithmetic mean, 0 for no values.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	return float64(SumBy(values, func(v int) int { return v })) / float64(len(values))
}

// StdDev returns the population standard deviation, 0 for no values.
func StdDev(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var variance float64
	for _, v := range values {
		d := float64(v) - mean
		variance += d * d
	}
	return math.Sqrt(variance / float64(len(values)))
}

// GroupBy buckets items by key. Keys are returned in first-seen order and each
// bucket keeps the items' relative order.
func GroupBy[T any, K comparable](items []T, key func(T) K) ([]K, map[K][]T) {
	var keys []K
	groups := make(map[K][]T)
	for _, it := range items {
		k := key(it)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], it)
	}
	return keys, groups
}
