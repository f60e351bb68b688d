package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newEditCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text>...",
		Short: "Replace the text of a todo",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := o.app.Mount(cmd.Context()); err != nil {
				return fmt.Errorf("fetch todos: %w", err)
			}
			if !o.app.BeginEdit(id) {
				return fmt.Errorf("todo %d not found", id)
			}
			o.app.SetDraft(strings.Join(args[1:], " "))
			if err := o.app.CommitEdit(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated #%d\n", id)
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
