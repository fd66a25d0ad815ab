package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/quiver/internal/ui"
	"github.com/ayoisaiah/quiver/stats"
)

const (
	barChartChar     = "▇"
	noSessionsMsg    = "No sessions found for the specified filters"
	insufficientData = "insufficient data"
	dateFormat       = "January 02, 2006"
)

func optFloat(f *float64, precision int) string {
	if f == nil {
		return insufficientData
	}

	return ui.Green(fmt.Sprintf("%.*f", precision, *f))
}

func line(label string, value any) string {
	return fmt.Sprintf("%s: %v\n", label, value)
}

func section(title string) string {
	return fmt.Sprintf("\n%s\n", ui.Blue(title))
}

func (r *Report) header() string {
	start, end := r.Opts.StartTime, r.Opts.EndTime

	if start.IsZero() {
		for i := range r.Sessions {
			d := r.Sessions[i].Date
			if !d.IsZero() && (start.IsZero() || d.Before(start)) {
				start = d
			}
		}
	}

	period := "Reporting period: all time"

	if !start.IsZero() && !end.IsZero() {
		period = "Reporting period: " + start.Format(dateFormat) +
			" - " + end.Format(dateFormat)
	}

	return pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln(period)
}

func (r *Report) context() string {
	c := r.Context
	if c == nil {
		return ""
	}

	value := func(s string) string {
		if s == "" {
			return "-"
		}

		return ui.Green(s)
	}

	return section("Context") +
		line("Sessions", ui.Green(c.Sessions)) +
		line("Kind", value(c.Kind)) +
		line("Distance", value(c.Distance)) +
		line("Environment", value(c.Environment)) +
		line("Target", value(c.Target))
}

func (r *Report) summary() string {
	s := r.Summary
	if s == nil {
		return section("Summary") + insufficientData + "\n"
	}

	return section("Summary") +
		line("Arrows", ui.Green(s.ArrowsCount)) +
		line("Volleys", ui.Green(s.TotalVolleys)) +
		line("Average per volley", optFloat(s.AveragePerVolley, 1)) +
		line("Average per session", optFloat(r.AveragePerSession, 1)) +
		line("Average arrow", ui.Green(fmt.Sprintf("%.2f", s.AverageScore))) +
		line("Standard deviation", optFloat(s.StdDeviation, 2)) +
		line("X", fmt.Sprintf("%s (%.1f%%)", ui.Green(s.XCount), s.XPercentage)) +
		line("10", fmt.Sprintf("%s (%.1f%%)", ui.Green(s.TenCount), s.TenPercentage)) +
		line("First half average", optFloat(s.FirstHalfAvg, 2)) +
		line("Second half average", optFloat(s.SecondHalfAvg, 2))
}

func (r *Report) technical() string {
	var b strings.Builder

	if r.Trispot.Any() {
		b.WriteString(section("Technical analysis (trispot)"))

		for _, spot := range stats.Spots {
			t := r.Trispot.Get(spot)

			label := strings.ToUpper(spot.String()[:1]) + spot.String()[1:] + " spot"

			if t == nil {
				b.WriteString(line(label, insufficientData))
				continue
			}

			b.WriteString(line(label, fmt.Sprintf(
				"%s (vertical %.3f, horizontal %.3f)",
				ui.Green(fmt.Sprintf("%.0f mm", t.DispersionRadius)),
				t.SpreadY,
				t.SpreadX,
			)))
		}
	} else {
		b.WriteString(section("Technical analysis"))

		if r.Technical == nil {
			b.WriteString(insufficientData + "\n")
			return b.String()
		}

		b.WriteString(line("Dispersion", fmt.Sprintf(
			"%s (%s)",
			ui.Green(fmt.Sprintf("%.0f mm", r.Technical.DispersionRadius)),
			r.DispersionLabel,
		)))

		if r.CenterMean != nil {
			b.WriteString(line("Centroid", r.CenterMean.String()))
		}
	}

	if r.Advice != nil {
		b.WriteString(line("Advice", ui.Magenta(*r.Advice)))
	}

	return b.String()
}

func (r *Report) comparison() string {
	c := r.Comparison

	title := fmt.Sprintf(
		"Competition vs training (%dm, %s)",
		c.Distance,
		c.TargetType,
	)

	delta := insufficientData
	if c.Delta != nil {
		delta = ui.Green(fmt.Sprintf("%+.2f", *c.Delta))
	}

	return section(title) +
		line("Training", fmt.Sprintf(
			"%s (%d sessions)",
			optFloat(c.TrainingAvg, 2),
			c.SessionsCount.Training,
		)) +
		line("Competition", fmt.Sprintf(
			"%s (%d sessions)",
			optFloat(c.CompetitionAvg, 2),
			c.SessionsCount.Competition,
		)) +
		line("Delta", delta)
}

func (r *Report) volleyChart() string {
	var bars pterm.Bars

	for i, avg := range r.VolleyAverages {
		if avg == nil {
			continue
		}

		bars = append(bars, pterm.Bar{
			Label: fmt.Sprintf("Volley %02d", i+1),
			Value: int(math.Round(*avg)),
		})
	}

	if len(bars) == 0 {
		return ""
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return section("Average per volley") + chart
}

// Show prints the report to w.
func (r *Report) Show(w io.Writer) {
	if len(r.Sessions) == 0 {
		fmt.Fprintln(w, pterm.Info.Sprint(noSessionsMsg))
		return
	}

	output := fmt.Sprint(
		r.header(),
		r.context(),
		r.summary(),
		r.technical(),
		r.comparison(),
		r.volleyChart(),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}

// ShowComparison prints only the competition against training comparison.
func (r *Report) ShowComparison(w io.Writer) {
	fmt.Fprintln(w, strings.TrimSpace(r.comparison()))
}
