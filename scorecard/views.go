package scorecard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/quiver/internal/session"
	"github.com/ayoisaiah/quiver/stats"
)

// slotView renders one arrow slot.
func (m *Model) slotView(v *session.Volley, volley, arrow int) string {
	label := "·"
	style := m.opts.Style.Cell

	if a := v.Arrows[arrow]; a != nil {
		h := v.Hits[arrow]

		switch {
		case h != nil && h.IsX:
			label = "X"
		case *a == 0:
			label = "M"
		default:
			label = strconv.Itoa(*a)
		}

		style = m.opts.Style.score(*a)
	}

	if m.cursor.Volley == volley && m.cursor.Arrow == arrow && !m.quitting {
		style = m.opts.Style.Cursor
	}

	return style.Render(label)
}

// halfView renders ten volleys starting at first as rows.
func (m *Model) halfView(first int) string {
	rows := make([]string, 0, session.HalfVolleys)

	for i := first; i < first+session.HalfVolleys; i++ {
		v := &m.sess.Volleys[i]

		cells := []string{m.opts.Style.Hint.Render(fmt.Sprintf("%2d", i+1))}

		for k := range v.Arrows {
			cells = append(cells, m.slotView(v, i, k))
		}

		cells = append(cells, m.opts.Style.Total.Render(strconv.Itoa(v.Total)))

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) headerView() string {
	s := m.sess

	details := []string{}

	for _, d := range []string{string(s.Kind), string(s.Environment), string(s.TargetType)} {
		if d != "" {
			details = append(details, d)
		}
	}

	if s.Distance > 0 {
		details = append(details, strconv.Itoa(s.Distance)+"m")
	}

	return m.opts.Style.Title.Render(s.Name) + "\n" +
		m.opts.Style.Hint.Render(strings.Join(details, " · "))
}

func (m *Model) totalsView() string {
	book := stats.Totals(&m.sess)

	line := fmt.Sprintf(
		"Total %d  (%d + %d)  %d/%d arrows",
		book.Total,
		book.FirstHalf,
		book.SecondHalf,
		book.Arrows,
		session.VolleyCount*session.ArrowsPerVolley,
	)

	if book.AveragePerVolley != nil {
		line += fmt.Sprintf("  avg %.2f", *book.AveragePerVolley)
	}

	if m.completed {
		return m.opts.Style.Complete.Render("Complete · " + line)
	}

	return line
}

func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(m.headerView())
	s.WriteString("\n\n")
	s.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.halfView(0),
		"    ",
		m.halfView(session.HalfVolleys),
	))
	s.WriteString("\n\n")
	s.WriteString(m.totalsView())

	if m.err != nil {
		s.WriteString("\n" + m.opts.Style.Error.Render(m.err.Error()))
	}

	if !m.quitting {
		s.WriteString("\n\n" + m.help.View(defaultKeymap))
	}

	return m.opts.Style.Base.Render(s.String())
}
