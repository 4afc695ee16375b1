package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/harrisonrobin/lifestyle/pkg/analyzer"
	"github.com/harrisonrobin/lifestyle/pkg/colors"
	"github.com/harrisonrobin/lifestyle/pkg/insights"
	"github.com/harrisonrobin/lifestyle/pkg/util"
)

type styles struct {
	r       *lipgloss.Renderer
	title   lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	good    lipgloss.Style
	warn    lipgloss.Style
	bad     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		r:       r,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		section: r.NewStyle().Bold(true).MarginTop(1),
		label:   r.NewStyle().Width(28),
		muted:   r.NewStyle().Foreground(lipgloss.Color("241")),
		good:    r.NewStyle().Foreground(lipgloss.Color("#54A24B")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("214")),
		bad:     r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func renderText(w io.Writer, res *analyzer.Result, palette *colors.ColorCache) error {
	st := newStyles(w)
	doc := NewDocument(res, palette)
	in := doc.Insights

	var b strings.Builder
	b.WriteString(st.title.Render("Lifestyle insights"))
	b.WriteString("\n")
	summary := fmt.Sprintf("%d tasks over %d days (%d weekday, %d weekend)",
		doc.Tasks, in.Weekday.Days+in.Weekend.Days, in.Weekday.Days, in.Weekend.Days)
	if doc.DroppedRows > 0 {
		summary += fmt.Sprintf(", %d undated rows skipped", doc.DroppedRows)
	}
	b.WriteString(st.muted.Render(summary))
	b.WriteString("\n")

	b.WriteString(st.section.Render("Key metrics"))
	b.WriteString("\n")
	kpis := [][2]string{
		{"Avg sleep", fmt.Sprintf("%.2fh", in.KPIs.AvgSleepHours)},
		{"Sleep consistency (std dev)", fmt.Sprintf("%d min", in.KPIs.SleepConsistencyStdDevMinutes)},
		{"Avg work", fmt.Sprintf("%.2fh/day", in.KPIs.AvgWorkHours)},
		{"Exercise days", fmt.Sprintf("%.1f/week", in.KPIs.ExerciseDaysPerWeek)},
		{"Health vs work", fmt.Sprintf("%.2f", in.KPIs.HealthVsWorkRatio)},
	}
	for _, kv := range kpis {
		b.WriteString(st.label.Render(kv[0]))
		b.WriteString(kv[1])
		b.WriteString("\n")
	}

	writeList(&b, st, "Strengths", in.Strengths, st.good)
	writeList(&b, st, "Opportunities", in.Opportunities, st.warn)
	writeList(&b, st, "Red flags", in.RedFlags, st.bad)

	if len(doc.Compare) > 0 {
		b.WriteString(st.section.Render("Weekday vs weekend (hours)"))
		b.WriteString("\n")
		b.WriteString(compareTable(st, doc))
		b.WriteString("\n")

		b.WriteString(st.section.Render("Top categories"))
		b.WriteString("\n")
		b.WriteString(st.label.Render("Weekday"))
		b.WriteString(PieSummary(doc.WeekdayPie))
		b.WriteString("\n")
		b.WriteString(st.label.Render("Weekend"))
		b.WriteString(PieSummary(doc.WeekendPie))
		b.WriteString("\n")
	}

	if len(in.SleepSeries) > 0 {
		b.WriteString(st.section.Render("Sleep by day"))
		b.WriteString("\n")
		for _, p := range in.SleepSeries {
			fmt.Fprintf(&b, "%s  %s\n", p.Date, util.FormatMinutes(p.Minutes))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeList(b *strings.Builder, st styles, title string, items []string, bullet lipgloss.Style) {
	b.WriteString(st.section.Render(title))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(st.muted.Render("  none"))
		b.WriteString("\n")
		return
	}
	for _, item := range items {
		b.WriteString(bullet.Render("  • "))
		b.WriteString(item)
		b.WriteString("\n")
	}
}

func compareTable(st styles, doc Document) string {
	rows := make([][]string, 0, len(doc.Compare))
	for _, bar := range doc.Compare {
		rows = append(rows, []string{
			bar.Category,
			fmt.Sprintf("%.2f", bar.WeekdayHours),
			fmt.Sprintf("%.2f", bar.WeekendHours),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.muted).
		Headers("Category", "Weekday", "Weekend").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := st.r.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Bold(true)
			}
			if col == 0 && row >= 0 && row < len(rows) {
				color, ok := doc.Colors[rows[row][0]]
				if !ok {
					color = colors.PaletteColor(row)
				}
				return s.Foreground(lipgloss.Color(color))
			}
			if col > 0 {
				return s.Align(lipgloss.Right)
			}
			return s
		}).
		String()
}

// PieSummary lists slices as "Work 40h, Sleep 35h".
func PieSummary(slices []insights.PieSlice) string {
	parts := make([]string, 0, len(slices))
	for _, s := range slices {
		parts = append(parts, fmt.Sprintf("%s %dh", s.Category, s.Hours))
	}
	return strings.Join(parts, ", ")
}
