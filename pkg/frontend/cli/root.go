// Package cli implements the todo command-line front-end.
package cli

import (
	"io"
	"net/http"
	"time"

	"todo-backend/config"
	"todo-backend/pkg/client"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	baseURL string
	verbose bool

	app *client.App
}

// NewRootCmd builds the todo command tree.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage todos on a todo backend",
		Long: `todo lists, adds, edits and deletes todos on a running todo backend.

The backend address is read from client.base_url in the config file
(or CLIENT_BASE_URL) unless --base-url is given.

Example:
  todo list
  todo add "Buy milk"
  todo edit 3 "Buy oat milk"
  todo delete 3`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			o.app = o.newApp(cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&o.baseURL, "base-url", "", "todo backend base URL")
	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "log failed requests to stderr")

	cmd.AddCommand(newListCmd(o))
	cmd.AddCommand(newAddCmd(o))
	cmd.AddCommand(newEditCmd(o))
	cmd.AddCommand(newDeleteCmd(o))

	return cmd
}

func (o *rootOptions) newApp(stderr io.Writer) *client.App {
	var api *client.API
	if o.baseURL != "" {
		api = client.NewAPIWithClient(o.baseURL, &http.Client{Timeout: 10 * time.Second})
	} else {
		config.ReadConfig(config.ReadConfigOption{Quiet: true, AllowMissingFile: true})
		api = client.NewAPI()
	}

	logger := log.New(io.Discard)
	if o.verbose {
		logger = log.NewWithOptions(stderr, log.Options{
			Prefix:          "todo",
			ReportTimestamp: true,
			Level:           log.DebugLevel,
		})
		logger.Debug("using backend", "url", api.BaseURL())
	}

	return client.NewApp(api, client.WithLogger(logger))
}
