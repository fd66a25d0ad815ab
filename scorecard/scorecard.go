// Package scorecard is the interactive terminal scorecard used to record a
// session arrow by arrow
package scorecard

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/quiver/internal/session"
	"github.com/ayoisaiah/quiver/internal/static"
	"github.com/ayoisaiah/quiver/scoring"
)

// Options configure the scorecard.
type Options struct {
	Style         Style
	Cmd           string
	AppDir        string
	AutosaveDelay time.Duration
	Notify        bool

	// StartVolley is the 1-based volley the cursor starts on. Zero starts at
	// the first open slot.
	StartVolley int
}

type (
	saveErrMsg struct {
		err error
	}

	hookDoneMsg struct {
		err error
	}
)

// Model is the bubbletea model of the scorecard.
type Model struct {
	recorder  *scoring.Recorder
	autosave  *scoring.Autosave
	saveErrs  chan error
	notifier  func(title, msg, icon string) error
	runner    func(name string, args ...string) error
	err       error
	opts      Options
	help      help.Model
	sess      session.Session
	cursor    scoring.Cursor
	completed bool
	quitting  bool
}

// New returns a scorecard for s. Every change is autosaved through saver.
func New(s *session.Session, saver scoring.Saver, opts Options) *Model {
	m := &Model{
		recorder: scoring.NewRecorder(s),
		saveErrs: make(chan error, 1),
		notifier: beeep.Notify,
		runner:   runCommand,
		opts:     opts,
		help:     help.New(),
	}

	m.autosave = scoring.NewAutosave(saver, opts.AutosaveDelay, m.reportSaveError)
	if opts.StartVolley > 0 {
		m.recorder.SetCursor(scoring.Cursor{Volley: opts.StartVolley - 1})
	}

	m.sess, m.cursor = m.recorder.Snapshot()
	m.completed = scoring.IsComplete(&m.sess)

	return m
}

// Run shows the scorecard until the user quits and returns the final state
// of the session. Pending changes are saved before Run returns.
func Run(s *session.Session, saver scoring.Saver, opts Options) (session.Session, error) {
	m := New(s, saver, opts)

	_, err := tea.NewProgram(m).Run()
	if err != nil {
		return m.Session(), err
	}

	return m.Session(), m.autosave.Flush()
}

// Session returns the current snapshot of the session being scored.
func (m *Model) Session() session.Session {
	s, _ := m.recorder.Snapshot()
	return s
}

// Err returns the last error reported while scoring.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	return waitForSaveError(m.saveErrs)
}

// reportSaveError runs on the autosave goroutine. Only the latest error is
// kept when the model is not keeping up.
func (m *Model) reportSaveError(err error) {
	select {
	case m.saveErrs <- err:
	default:
	}
}

func waitForSaveError(ch <-chan error) tea.Cmd {
	return func() tea.Msg {
		return saveErrMsg{err: <-ch}
	}
}

// onComplete saves the finished session, then sends the desktop
// notification and runs the configured command.
func (m *Model) onComplete() tea.Cmd {
	sess := m.sess

	return func() tea.Msg {
		if err := m.autosave.Flush(); err != nil {
			return hookDoneMsg{err: err}
		}

		if m.opts.Notify {
			title := "Session complete"
			msg := fmt.Sprintf(
				"%s: %d points over %d arrows",
				sess.Name,
				sess.TotalScore(),
				sess.ArrowCount(),
			)

			if err := m.notifier(title, msg, m.iconPath()); err != nil {
				return hookDoneMsg{err: errNotify.Wrap(err)}
			}
		}

		return hookDoneMsg{err: m.runCmd()}
	}
}

// iconPath is empty when no icon has been installed.
func (m *Model) iconPath() string {
	if m.opts.AppDir == "" {
		return ""
	}

	p, _ := xdg.SearchDataFile(filepath.Join(m.opts.AppDir, static.IconFile))

	return p
}

// runCmd executes the scoring.cmd hook.
func (m *Model) runCmd() error {
	if m.opts.Cmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(m.opts.Cmd)
	if err != nil {
		return errParseCmd.Fmt(m.opts.Cmd).Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	if err := m.runner(cmdSlice[0], cmdSlice[1:]...); err != nil {
		return errRunCmd.Wrap(err)
	}

	return nil
}

func runCommand(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}
