package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/quiver/internal/config"
	"github.com/ayoisaiah/quiver/internal/osutil"
	"github.com/ayoisaiah/quiver/internal/pathutil"
	"github.com/ayoisaiah/quiver/internal/session"
	"github.com/ayoisaiah/quiver/internal/ui"
	"github.com/ayoisaiah/quiver/report"
	"github.com/ayoisaiah/quiver/scorecard"
	"github.com/ayoisaiah/quiver/scoring"
	"github.com/ayoisaiah/quiver/stats"
	"github.com/ayoisaiah/quiver/store"
)

// metaFlagSet reports whether any session metadata flag was provided.
func metaFlagSet(ctx *cli.Context) bool {
	for _, f := range metaFlags {
		for _, name := range f.Names() {
			if ctx.IsSet(name) {
				return true
			}
		}
	}

	return false
}

// shouldPrompt reports whether the session details should be asked for
// interactively.
func shouldPrompt(ctx *cli.Context) bool {
	return !metaFlagSet(ctx) &&
		ctx.String("input") == "" &&
		osutil.IsTerminal(os.Stdin)
}

// newAction handles the new command which creates a session and opens the
// scorecard for it.
func newAction(ctx *cli.Context) error {
	cfg, db, err := setup(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	meta := cfg.DefaultMeta()

	if shouldPrompt(ctx) {
		meta, err = config.PromptMeta(meta)
		if err != nil {
			return err
		}
	}

	meta, err = config.SessionMeta(ctx, meta)
	if err != nil {
		return err
	}

	s := session.New(meta)

	if err := db.Create(&s); err != nil {
		return err
	}

	if ctx.Bool("no-score") && ctx.String("input") == "" {
		report.SessionSaved(s.Name, s.TotalScore(), s.ArrowCount())
		pterm.Info.Printfln("score it later with 'quiver score %s'", s.ID)

		return nil
	}

	return score(ctx, cfg, db, &s)
}

// scoreAction handles the score command which resumes scoring a session.
func scoreAction(ctx *cli.Context) error {
	cfg, db, err := setup(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	s, err := sessionFromArgs(ctx, db)
	if err != nil {
		return err
	}

	return score(ctx, cfg, db, s)
}

// sessionFromArgs returns the session named by the first argument or the
// most recent session when no argument is given.
func sessionFromArgs(ctx *cli.Context, db store.DB) (*session.Session, error) {
	if id := ctx.Args().First(); id != "" {
		return db.Get(id)
	}

	sessions, err := db.List()
	if err != nil {
		return nil, err
	}

	if len(sessions) == 0 {
		return nil, errNoSessions
	}

	return db.Get(sessions[len(sessions)-1].ID)
}

func startVolley(ctx *cli.Context) (int, error) {
	v := ctx.Int("volley")
	if v < 0 || v > session.VolleyCount {
		return 0, errInvalidVolley.Fmt(session.VolleyCount, v)
	}

	return v, nil
}

func score(
	ctx *cli.Context,
	cfg *config.Config,
	db *store.Client,
	s *session.Session,
) error {
	volley, err := startVolley(ctx)
	if err != nil {
		return err
	}

	if in := ctx.String("input"); in != "" {
		return quickScore(db, s, in, volley)
	}

	final, err := scorecard.Run(s, db, scorecard.Options{
		Style:         scorecard.NewStyle(cfg.Display.DarkTheme),
		Cmd:           cfg.Scoring.Cmd,
		AppDir:        pathutil.Dir(),
		AutosaveDelay: cfg.Scoring.AutosaveDelay,
		Notify:        cfg.Scoring.Notify,
		StartVolley:   volley,
	})
	if err != nil {
		return err
	}

	report.SessionSaved(final.Name, final.TotalScore(), final.ArrowCount())

	return nil
}

// quickScore records a list of quick-entry tokens without the scorecard.
// Entries fill the session from the first open slot, or from the start of
// volley when it is set.
func quickScore(db store.DB, s *session.Session, input string, volley int) error {
	inputs, err := scoring.ParseInputs(input)
	if err != nil {
		return err
	}

	rec := scoring.NewRecorder(s)

	if volley > 0 {
		rec.SetCursor(scoring.Cursor{Volley: volley - 1})
	}

	for _, in := range inputs {
		rec.Record(in)
	}

	final, _ := rec.Snapshot()

	if err := db.Update(final.ID, &final); err != nil {
		return err
	}

	printScorecard(config.Stdout, &final)
	report.SessionSaved(final.Name, final.TotalScore(), final.ArrowCount())

	return nil
}

// printScorecard prints the volleys of s followed by its totals.
func printScorecard(w io.Writer, s *session.Session) {
	tableBody := [][]string{
		{"VOLLEY", "1", "2", "3", "TOTAL", "RUNNING"},
	}

	var running int

	for i := range s.Volleys {
		v := &s.Volleys[i]
		if v.Scored() == 0 {
			continue
		}

		running += v.Total

		row := []string{strconv.Itoa(i + 1)}

		for k, a := range v.Arrows {
			if a == nil {
				row = append(row, "")
				continue
			}

			row = append(row, ui.Arrow(*a, v.Hits[k] != nil && v.Hits[k].IsX))
		}

		row = append(row, strconv.Itoa(v.Total), strconv.Itoa(running))

		tableBody = append(tableBody, row)
	}

	fmt.Fprintln(w, ui.Blue(s.Name)+" "+ui.Highlight(describe(s)))

	if len(tableBody) > 1 {
		ui.PrintTable(tableBody, w)
	}

	book := stats.Totals(s)

	fmt.Fprintf(
		w,
		"Total: %s (first half %d, second half %d) over %d arrows\n",
		ui.Green(book.Total),
		book.FirstHalf,
		book.SecondHalf,
		book.Arrows,
	)

	summary := stats.ComputeSessionSummary(
		stats.ArrowsFromSessions([]session.Session{*s}),
	)
	if summary != nil {
		fmt.Fprintf(
			w,
			"Average arrow: %s · 10s: %d · Xs: %d\n",
			ui.Green(fmt.Sprintf("%.2f", summary.AverageScore)),
			summary.TenCount,
			summary.XCount,
		)
	}
}

// describe returns the metadata of s on one line.
func describe(s *session.Session) string {
	out := s.Date.Format("Jan 02, 2006")

	for _, d := range []string{string(s.Kind), string(s.Environment), string(s.TargetType)} {
		if d != "" {
			out += " · " + d
		}
	}

	if s.Distance > 0 {
		out += fmt.Sprintf(" · %dm", s.Distance)
	}

	return out
}

// showAction handles the show command which prints a single session.
func showAction(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		return errMissingID
	}

	_, db, err := setup(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	s, err := db.Get(id)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(s)
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	printScorecard(config.Stdout, s)

	return nil
}

// editAction handles the edit command which updates the details of a
// session while keeping its scores.
func editAction(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		return errMissingID
	}

	_, db, err := setup(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	s, err := db.Get(id)
	if err != nil {
		return err
	}

	meta := s.Meta

	if shouldPrompt(ctx) {
		meta, err = config.PromptMeta(meta)
		if err != nil {
			return err
		}
	}

	meta, err = config.SessionMeta(ctx, meta)
	if err != nil {
		return err
	}

	if meta.Name == "" {
		meta.Name = session.DefaultName(meta.Date, meta.Kind)
	}

	s.Meta = meta

	if err := db.Update(id, s); err != nil {
		return err
	}

	printSessionsTable(config.Stdout, []session.Session{*s})

	return nil
}
