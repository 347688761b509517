package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	boardadapter "github.com/bnema/tetris-stack/internal/adapters/render/board"
	"github.com/bnema/tetris-stack/internal/application"
	"github.com/spf13/cobra"
)

type menuItem struct {
	choice int
	label  string
	op     application.Operation
	quit   bool
}

var operationLabels = map[application.Operation]string{
	application.OperationPlay:          "Play the front piece",
	application.OperationReserve:       "Reserve the front piece",
	application.OperationUseReserved:   "Use the reserved piece",
	application.OperationSwapFrontTop:  "Swap queue front with reserve top",
	application.OperationSwapTriple:    "Swap the first 3 queue pieces with the 3 reserved pieces",
	application.OperationManualEnqueue: "Insert a new piece",
}

func newPlayCmd(app *app) *cobra.Command {
	var freeSlots bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive piece-management session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}

			svc, closeLog, err := app.newSession(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			return runSession(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), svc, app.boardRenderer, boardadapter.RenderOptions{ShowFreeSlots: freeSlots})
		},
	}

	cmd.Flags().String("mode", "", "Command set: full or minimal")
	cmd.Flags().Int("queue-capacity", 0, "Number of upcoming pieces kept in the queue")
	cmd.Flags().Int("stack-capacity", 0, "Number of pieces the reserve stack holds")
	cmd.Flags().Uint64("seed", 0, "Seed for piece kinds (0 seeds from the clock)")
	cmd.Flags().Uint64("id-start", 0, "Id of the first generated piece")
	cmd.Flags().BoolVar(&freeSlots, "free-slots", false, "Show empty slots up to capacity")

	bindFlag(app, "session.mode", cmd, "mode")
	bindFlag(app, "queue.capacity", cmd, "queue-capacity")
	bindFlag(app, "stack.capacity", cmd, "stack-capacity")
	bindFlag(app, "session.seed", cmd, "seed")
	bindFlag(app, "session.id_start", cmd, "id-start")

	return cmd
}

func bindFlag(app *app, key string, cmd *cobra.Command, name string) {
	if err := app.viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}

func runSession(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	svc *application.Service,
	render func(application.Board, boardadapter.RenderOptions) (string, error),
	opts boardadapter.RenderOptions,
) error {
	menu := menuFor(svc.Mode())
	reader := bufio.NewReader(in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		rendered, err := render(svc.Board(), opts)
		if err != nil {
			return fmt.Errorf("render board: %w", err)
		}
		_, _ = fmt.Fprintf(out, "\n%s\n\n", rendered)
		writeMenu(out, menu)

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read menu choice: %w", err)
		}
		eof := errors.Is(err, io.EOF)

		trimmed := strings.TrimSpace(input)
		if trimmed == "" && eof {
			_, _ = fmt.Fprintln(out)
			writeGoodbye(out)
			return nil
		}

		item, ok := lookupChoice(menu, trimmed)
		switch {
		case !ok:
			_, _ = fmt.Fprintf(out, "Invalid option %q, try again.\n", sanitizeForTerminal(trimmed))
		case item.quit:
			writeGoodbye(out)
			return nil
		default:
			outcome := svc.Execute(item.op)
			_, _ = fmt.Fprintln(out, outcome.Message())
		}

		if eof {
			writeGoodbye(out)
			return nil
		}
	}
}

func menuFor(mode application.Mode) []menuItem {
	ops := mode.Operations()
	items := make([]menuItem, 0, len(ops)+1)
	for i, op := range ops {
		items = append(items, menuItem{choice: i + 1, label: operationLabels[op], op: op})
	}
	return append(items, menuItem{choice: 0, label: "Quit", quit: true})
}

func writeMenu(out io.Writer, menu []menuItem) {
	_, _ = fmt.Fprintln(out, "Options:")
	for _, item := range menu {
		_, _ = fmt.Fprintf(out, "%d\t%s\n", item.choice, item.label)
	}
	_, _ = fmt.Fprint(out, "Choice: ")
}

// lookupChoice accepts either the menu number or the operation name.
func lookupChoice(menu []menuItem, input string) (menuItem, bool) {
	if choice, err := strconv.Atoi(input); err == nil {
		for _, item := range menu {
			if item.choice == choice {
				return item, true
			}
		}
		return menuItem{}, false
	}

	for _, item := range menu {
		if item.quit && strings.EqualFold(input, "quit") {
			return item, true
		}
		if !item.quit && strings.EqualFold(input, string(item.op)) {
			return item, true
		}
	}
	return menuItem{}, false
}

func writeGoodbye(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Session closed.")
}

func sanitizeForTerminal(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)
}
