package scorecard

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/quiver/scoring"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case saveErrMsg:
		m.err = msg.err
		return m, waitForSaveError(m.saveErrs)

	case hookDoneMsg:
		if msg.err != nil {
			m.err = msg.err
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		m.quitting = true

		if err := m.autosave.Flush(); err != nil {
			m.err = err
		}

		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, defaultKeymap.score):
		return m.record(msg.String())

	case key.Matches(msg, defaultKeymap.ten):
		return m.record("10")

	case key.Matches(msg, defaultKeymap.inner):
		return m.record("X")

	case key.Matches(msg, defaultKeymap.miss):
		return m.record("M")

	case key.Matches(msg, defaultKeymap.clear):
		m.sess = m.recorder.Clear()
		m.completed = scoring.IsComplete(&m.sess)
		m.autosave.Schedule(&m.sess)

		return m, nil

	case key.Matches(msg, defaultKeymap.left):
		m.cursor = m.recorder.SetCursor(m.cursor.Prev())

	case key.Matches(msg, defaultKeymap.right):
		m.cursor = m.recorder.SetCursor(m.cursor.Next())

	case key.Matches(msg, defaultKeymap.up):
		m.cursor = m.recorder.SetCursor(scoring.Cursor{
			Volley: m.cursor.Volley - 1,
			Arrow:  m.cursor.Arrow,
		})

	case key.Matches(msg, defaultKeymap.down):
		m.cursor = m.recorder.SetCursor(scoring.Cursor{
			Volley: m.cursor.Volley + 1,
			Arrow:  m.cursor.Arrow,
		})
	}

	return m, nil
}

// record applies a quick-entry token at the cursor. Completing the last open
// slot triggers the completion hooks once.
func (m *Model) record(token string) (tea.Model, tea.Cmd) {
	in, err := scoring.ParseInput(token)
	if err != nil {
		m.err = err
		return m, nil
	}

	m.sess, m.cursor = m.recorder.Record(in)
	m.autosave.Schedule(&m.sess)
	m.err = nil

	wasComplete := m.completed
	m.completed = scoring.IsComplete(&m.sess)

	if m.completed && !wasComplete {
		return m, m.onComplete()
	}

	return m, nil
}
