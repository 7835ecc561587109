package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/store"
)

const batchHelp = `Commands (one per line, blank lines and # comments are skipped):
  add <text...>          Add an item (text is taken verbatim)
  toggle <n>             Toggle done for the n-th visible item (1-based)
  rm <n>                 Remove the n-th visible item
  edit <n> <text...>     Replace the text of the n-th visible item
  toggle-all             Mark every item done, or undone on the next call
  filter <all|active|completed>
  clear                  Remove completed items and show all
  ls                     Print the list at this point of the script`

func newBatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file]",
		Short: "Apply a script of list commands and print the result",
		Long:  "Reads commands from file (or stdin when omitted or \"-\"), applies them to a fresh list and prints it.\n\n" + batchHelp,
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			st := app.newStore()
			out := cmd.OutOrStdout()
			if err := runBatch(st, in, out); err != nil {
				return err
			}
			printList(out, st.Snapshot())
			return app.export(st, cmd.ErrOrStderr())
		},
	}
}

// runBatch applies each script line to st. Positions that do not exist are
// ignored like any unknown id; malformed lines stop the run with a usage error.
func runBatch(st *store.Store, r io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if err := applyLine(st, strings.TrimLeft(raw, " \t"), out); err != nil {
			return usageErrorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}

func applyLine(st *store.Store, line string, out io.Writer) error {
	cmd, rest, _ := strings.Cut(line, " ")

	switch cmd {
	case "add":
		st.AddItem(rest)
		return nil

	case "toggle", "done":
		id, err := visibleAt(st, rest)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
		st.ToggleComplete(id)
		return nil

	case "rm":
		id, err := visibleAt(st, rest)
		if err != nil {
			return fmt.Errorf("rm: %w", err)
		}
		st.RemoveItem(id)
		return nil

	case "edit":
		pos, text, _ := strings.Cut(rest, " ")
		id, err := visibleAt(st, pos)
		if err != nil {
			return fmt.Errorf("edit: %w", err)
		}
		st.BeginEdit(id)
		st.Rename(id, text)
		st.CommitEdit(id)
		return nil

	case "toggle-all":
		st.ToggleAll()
		return nil

	case "filter":
		f, ok := model.ParseFilter(rest)
		if !ok {
			return fmt.Errorf("filter: want all, active or completed, got %q", strings.TrimSpace(rest))
		}
		st.SetFilter(f)
		return nil

	case "clear":
		st.ClearCompleted()
		return nil

	case "ls":
		printList(out, st.Snapshot())
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}

// visibleAt resolves a 1-based position in the visible list. Out of range
// positions yield uuid.Nil, which every store operation ignores.
func visibleAt(st *store.Store, arg string) (uuid.UUID, error) {
	arg = strings.TrimSpace(arg)
	n, err := strconv.Atoi(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("not a number: %q", arg)
	}
	visible := slices.Collect(st.VisibleItems())
	if n < 1 || n > len(visible) {
		return uuid.Nil, nil
	}
	return visible[n-1].ID, nil
}
