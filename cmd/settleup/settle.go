package main

import (
	"fmt"
	"io"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/service"
)

func newSettleCmd(opts *rootOptions) *cobra.Command {
	var (
		details string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "settle FILE",
		Short: "Plan the transfers that settle an event",
		Long: `settle prints one transfer per line. When --details is given, it also
prints the message to send to each debtor, ending with those payment details.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event, err := opts.loadEvent(args[0])
			if err != nil {
				return err
			}

			resp, err := opts.api().Settle(cmd.Context(), connect.NewRequest(&service.SettleRequest{
				Event:          *event,
				PaymentDetails: details,
			}))
			if err != nil {
				return fmt.Errorf("settle: %w", err)
			}
			msg := resp.Msg

			printWarnings(cmd.ErrOrStderr(), msg.Warnings)
			if asJSON {
				return printJSON(cmd.OutOrStdout(), msg)
			}
			printSettlement(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVarP(&details, "details", "d", "", "payment details to include in the messages")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the response as JSON")
	return cmd
}

func printSettlement(w io.Writer, res *service.SettleResponse) {
	if len(res.Transfers) == 0 {
		fmt.Fprintln(w, "Everyone is settled up.")
		return
	}
	for _, t := range res.Transfers {
		fmt.Fprintf(w, "%s -> %s: %s\n", t.FromName, t.ToName, calculator.FormatAmount(t.Amount, t.Currency))
	}
	for _, m := range res.Messages {
		fmt.Fprintf(w, "\n%s\n", m)
	}
}
