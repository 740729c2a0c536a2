package main

import (
	"fmt"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/service"
)

func newBalancesCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "balances FILE",
		Short: "Print every participant's spent, share and balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event, err := opts.loadEvent(args[0])
			if err != nil {
				return err
			}

			resp, err := opts.api().ComputeBalances(cmd.Context(), connect.NewRequest(&service.ComputeBalancesRequest{Event: *event}))
			if err != nil {
				return fmt.Errorf("compute balances: %w", err)
			}
			msg := resp.Msg

			printWarnings(cmd.ErrOrStderr(), msg.Warnings)
			if asJSON {
				return printJSON(cmd.OutOrStdout(), msg)
			}
			for _, b := range msg.Balances {
				fmt.Fprintln(cmd.OutOrStdout(), calculator.FormatBalance(b, msg.Currency))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the response as JSON")
	return cmd
}
