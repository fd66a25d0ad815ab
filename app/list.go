package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/quiver/internal/config"
	"github.com/ayoisaiah/quiver/internal/session"
	"github.com/ayoisaiah/quiver/internal/ui"
	"github.com/ayoisaiah/quiver/stats"
	"github.com/ayoisaiah/quiver/store"
)

const (
	noSessionsMsg = "No sessions found for the specified filters"
)

// listEntry is a session as shown by the list command.
type listEntry struct {
	session.Session
	Scorebook stats.Scorebook `json:"scorebook"`
}

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(w io.Writer, sessions []session.Session) {
	tableBody := make([][]string, len(sessions))

	for i := range sessions {
		sess := &sessions[i]
		book := stats.Totals(sess)

		total := strconv.Itoa(book.Total)
		if book.Complete {
			total = ui.Green(total)
		}

		distance := ""
		if sess.Distance > 0 {
			distance = fmt.Sprintf("%dm", sess.Distance)
		}

		tableBody[i] = []string{
			strconv.Itoa(i + 1),
			sess.ID,
			sess.Date.Format("Jan 02, 2006"),
			sess.Name,
			string(sess.Kind),
			string(sess.Environment),
			string(sess.TargetType),
			distance,
			total,
			strconv.Itoa(book.Arrows),
			strconv.Itoa(book.FirstHalf),
			strconv.Itoa(book.SecondHalf),
		}
	}

	tableBody = append([][]string{
		{
			"#", "ID", "DATE", "NAME", "KIND", "ENV", "TARGET",
			"DIST", "TOTAL", "ARROWS", "1ST", "2ND",
		},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// sortSessions orders sessions in place by date, name or total score.
// Ties keep their date order.
func sortSessions(sessions []session.Session, by string) error {
	switch by {
	case "", "date":
		slices.SortStableFunc(sessions, func(a, b session.Session) int {
			return a.Date.Compare(b.Date)
		})
	case "name":
		slices.SortStableFunc(sessions, func(a, b session.Session) int {
			switch {
			case natural.Less(a.Name, b.Name):
				return -1
			case natural.Less(b.Name, a.Name):
				return 1
			default:
				return 0
			}
		})
	case "total":
		slices.SortStableFunc(sessions, func(a, b session.Session) int {
			return b.TotalScore() - a.TotalScore()
		})
	default:
		return errUnknownSort.Fmt(by)
	}

	return nil
}

// filterSessions returns the sessions matching the filter flags.
func filterSessions(ctx *cli.Context, db store.DB) ([]session.Session, error) {
	filter, err := config.Filter(ctx)
	if err != nil {
		return nil, err
	}

	return db.Find(filter.Query())
}

// listAction handles the list command which prints a table of the sessions
// matching the filter flags.
func listAction(ctx *cli.Context) error {
	_, db, err := setup(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	sessions, err := filterSessions(ctx, db)
	if err != nil {
		return err
	}

	if err := sortSessions(sessions, ctx.String("sort")); err != nil {
		return err
	}

	if ctx.Bool("json") {
		entries := make([]listEntry, len(sessions))

		for i := range sessions {
			entries[i] = listEntry{
				Session:   sessions[i],
				Scorebook: stats.Totals(&sessions[i]),
			}
		}

		b, err := json.Marshal(entries)
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(config.Stdout, sessions)

	return nil
}
