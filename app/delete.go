package app

import (
	"bufio"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/quiver/internal/config"
	"github.com/ayoisaiah/quiver/internal/session"
	"github.com/ayoisaiah/quiver/store"
)

// filterFlagSet reports whether any of the filter flags was provided.
func filterFlagSet(ctx *cli.Context) bool {
	for _, f := range filterFlags {
		for _, name := range f.Names() {
			if ctx.IsSet(name) {
				return true
			}
		}
	}

	return false
}

// sessionsToDelete resolves the sessions selected by the id arguments or,
// when there are none, by the filter flags.
func sessionsToDelete(ctx *cli.Context, db store.DB) ([]session.Session, error) {
	if ctx.NArg() > 0 {
		sessions := make([]session.Session, 0, ctx.NArg())

		for _, id := range ctx.Args().Slice() {
			s, err := db.Get(id)
			if err != nil {
				return nil, err
			}

			sessions = append(sessions, *s)
		}

		return sessions, nil
	}

	if !filterFlagSet(ctx) {
		return nil, errNothingToDelete
	}

	return filterSessions(ctx, db)
}

// deleteAction handles the delete command. It requests for confirmation
// before proceeding with the operation unless --yes is set.
func deleteAction(ctx *cli.Context) error {
	_, db, err := setup(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	sessions, err := sessionsToDelete(ctx, db)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(config.Stdout, sessions)

	if !ctx.Bool("yes") {
		warning := pterm.Warning.Sprint(
			"The above sessions will be deleted permanently. Press ENTER to proceed",
		)

		fmt.Fprint(config.Stdout, warning)

		reader := bufio.NewReader(config.Stdin)

		_, _ = reader.ReadString('\n')
	}

	ids := make([]string, len(sessions))
	for i := range sessions {
		ids[i] = sessions[i].ID
	}

	if err := db.Delete(ids...); err != nil {
		return err
	}

	pterm.Success.Printfln("deleted %d session(s)", len(ids))

	return nil
}
