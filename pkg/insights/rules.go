package insights

// Bucket names which list a rule's message lands in.
type Bucket int

const (
	Strength Bucket = iota
	Opportunity
	RedFlag
)

// measures are the unrounded values rules are tested against.
type measures struct {
	avgSleepMinutes     float64
	sleepStdDevMinutes  float64
	avgWorkMinutes      float64
	exerciseDaysPerWeek float64
	healthVsWorkRatio   float64
}

// Rule is a fixed threshold test with its message.
type Rule struct {
	Bucket  Bucket
	Message string
	test    func(m measures) bool
}

// Rules in evaluation order.
var Rules = []Rule{
	{Strength, "You average 7+ hours of sleep. Nice!",
		func(m measures) bool { return m.avgSleepMinutes >= 7*60 }},
	{Strength, "Sleep schedule is fairly consistent (std dev ≤ 45 min).",
		func(m measures) bool { return m.sleepStdDevMinutes <= 45 }},
	{Strength, "Regular exercise (≥ 3 days/week). Keep it up!",
		func(m measures) bool { return m.exerciseDaysPerWeek >= 3 }},
	{Opportunity, "Aim for ~7–9 hours of sleep on most days.",
		func(m measures) bool { return m.avgSleepMinutes < 7*60 }},
	{Opportunity, "Try a steadier bedtime/wake window to reduce sleep variability.",
		func(m measures) bool { return m.sleepStdDevMinutes > 60 }},
	{Opportunity, "Consider adding short health breaks to balance work intensity.",
		func(m measures) bool { return m.healthVsWorkRatio < 0.25 }},
	{RedFlag, "Work time exceeds 9h/day on average. Watch for burnout.",
		func(m measures) bool { return m.avgWorkMinutes > 9*60 }},
	{RedFlag, "Very low exercise frequency. Even short walks help.",
		func(m measures) bool { return m.exerciseDaysPerWeek < 1 }},
}

func evaluate(m measures) (strengths, opportunities, redFlags []string) {
	strengths, opportunities, redFlags = []string{}, []string{}, []string{}
	for _, r := range Rules {
		if !r.test(m) {
			continue
		}
		switch r.Bucket {
		case Strength:
			strengths = append(strengths, r.Message)
		case Opportunity:
			opportunities = append(opportunities, r.Message)
		case RedFlag:
			redFlags = append(redFlags, r.Message)
		}
	}
	return strengths, opportunities, redFlags
}
