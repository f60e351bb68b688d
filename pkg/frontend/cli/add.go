package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a todo",
		Long: `Add creates a todo from its arguments joined by spaces and prints the
refreshed list. The text needs at least 3 characters once trimmed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			o.app.SetInput(text)
			if err := o.app.Add(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %q\n", strings.TrimSpace(text))
			return printTodos(cmd.OutOrStdout(), o.app.Snapshot().Todos)
		},
	}
}
