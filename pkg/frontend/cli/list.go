package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"todo-backend/pkg/entity/model"

	"github.com/spf13/cobra"
)

// EmptyListText is printed by list when there are no todos.
const EmptyListText = "No todos yet. Add one above!"

func newListCmd(o *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.app.Mount(cmd.Context()); err != nil {
				return fmt.Errorf("fetch todos: %w", err)
			}
			todos := o.app.Snapshot().Todos
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), todos)
			}
			return printTodos(cmd.OutOrStdout(), todos)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print todos as JSON")

	return cmd
}

func printTodos(w io.Writer, todos []model.Todo) error {
	if len(todos) == 0 {
		_, err := fmt.Fprintln(w, EmptyListText)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTODO")
	for _, t := range todos {
		fmt.Fprintf(tw, "%d\t%s\n", t.ID, t.Todo)
	}
	return tw.Flush()
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
