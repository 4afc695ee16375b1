// Package keywords classifies free-text categories and task names into the
// dimensions the insight engine tracks (work, health, exercise, sleep).
//
// Matching is a case-insensitive substring test, so "Workout" is both a work
// and a health category and "run" matches "Brunch". That fuzziness is part of
// the classification contract.
package keywords

import "strings"

// Set is a named list of lowercase keywords.
type Set struct {
	Name  string
	Words []string
}

var (
	Work = Set{Name: "work", Words: []string{"work"}}

	Sleep = Set{Name: "sleep", Words: []string{"sleep"}}

	Exercise = Set{Name: "exercise", Words: []string{
		"exercise", "fitness", "workout", "run", "running", "jog",
		"cycle", "cycling", "bike", "swim", "yoga", "gym",
		"strength", "weights", "lifting", "hiit", "pilates", "crossfit",
		"hike", "walking", "walk",
	}}

	Health = Set{Name: "health", Words: []string{
		"health", "sleep", "exercise", "fitness", "meditation", "yoga",
		"gym", "workout", "run", "running", "cycle", "cycling",
		"bike", "swim", "strength", "weights", "lifting", "hiit",
		"pilates", "crossfit", "hike", "walking", "walk",
	}}
)

// Matches reports whether any keyword occurs in text.
func (s Set) Matches(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, w := range s.Words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// MatchesAny reports whether any of the texts matches.
func (s Set) MatchesAny(texts ...string) bool {
	for _, t := range texts {
		if s.Matches(t) {
			return true
		}
	}
	return false
}
