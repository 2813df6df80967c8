package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbramble/namecheap-go/namecheap"
)

func newCheckCmd(cfg *config) *cobra.Command {
	var availableOnly bool

	cmd := &cobra.Command{
		Use:   "check [domain...]",
		Short: "Check registration availability for up to 50 domains (args and/or stdin)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := readDomainsFromArgsAndStdin(args, os.Stdin)
			if err != nil {
				return runErr(cmd, fmt.Errorf("failed to read domains: %w", err))
			}
			if len(names) == 0 {
				return &cliError{Code: 2, ShowUsage: true, Cmd: cmd}
			}

			client, err := cfg.newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.DomainsCheck(cmd.Context(), names...)
			if err != nil {
				return runErr(cmd, err)
			}

			if len(result.Dropped) > 0 {
				fmt.Fprintf(os.Stderr, "dropped %d invalid name(s): %s\n",
					len(result.Dropped), strings.Join(result.Dropped, ", "))
			}

			rows := result.Domains
			if availableOnly {
				filtered := rows[:0]
				for _, d := range rows {
					if d.Available {
						filtered = append(filtered, d)
					}
				}
				rows = filtered
			}

			return writeRows(os.Stdout, cfg.outFormat, rows,
				"DOMAIN\tAVAILABLE\tPREMIUM\tICANN FEE\tPREMIUM PRICE",
				func(d namecheap.DomainCheck) string {
					return fmt.Sprintf("%s\t%s\t%s\t%.2f\t%.2f",
						d.Domain, yesNo(d.Available), yesNo(d.IsPremiumName), d.IcannFee, d.PremiumRegistrationPrice)
				})
		},
	}

	cmd.SetFlagErrorFunc(usageErr)
	cmd.Flags().BoolVar(&availableOnly, "available-only", false, "Only output available domains")

	return cmd
}
