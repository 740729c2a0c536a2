package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/service"
	"github.com/mmynk/settleup/internal/snapshot"
	"github.com/mmynk/settleup/pkg/logging"
)

// settlementAPI is satisfied by both the in-process service and the remote client.
type settlementAPI interface {
	ComputeBalances(context.Context, *connect.Request[service.ComputeBalancesRequest]) (*connect.Response[service.ComputeBalancesResponse], error)
	Settle(context.Context, *connect.Request[service.SettleRequest]) (*connect.Response[service.SettleResponse], error)
}

// rootOptions holds the persistent flags.
type rootOptions struct {
	currency string
	verbose  bool
	server   string
	timeout  time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "settleup",
		Short: "Work out who owes whom after a shared event",
		Long: `settleup reads an event snapshot (participants and priced items, as JSON
or YAML), computes every participant's balance and plans the transfers that
settle the event.

By default the calculation runs in-process. With --server it is delegated to
a running settleup server over Connect RPC.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelError
			if opts.verbose {
				level = slog.LevelDebug
			}
			logging.SetupWith(cmd.ErrOrStderr(), level, "text")
		},
	}

	cmd.PersistentFlags().StringVar(&opts.currency, "currency", models.DefaultCurrency, "currency for snapshots that do not name one")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.server, "server", "", "settleup server URL, e.g. http://localhost:8080")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout when using --server")

	cmd.AddCommand(
		newBalancesCmd(opts),
		newSettleCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// api returns the remote client when --server is set, the in-process service otherwise.
func (o *rootOptions) api() settlementAPI {
	if o.server == "" {
		return service.NewSettlementService(o.currency, nil)
	}
	slog.Debug("Using remote settlement service", "server", o.server)
	return service.NewSettlementServiceClient(&http.Client{Timeout: o.timeout}, o.server)
}

// loadEvent reads, normalizes and validates the snapshot at path.
func (o *rootOptions) loadEvent(path string) (*models.Event, error) {
	event, err := snapshot.LoadFile(path, o.currency)
	if err != nil {
		return nil, err
	}
	slog.Debug("Snapshot loaded",
		"path", path,
		"event_id", event.ID,
		"participants", len(event.Participants),
		"items", len(event.Items),
	)
	return event, nil
}

func printWarnings(w io.Writer, warnings []snapshot.Warning) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "warning: %s\n", warning.Message)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
