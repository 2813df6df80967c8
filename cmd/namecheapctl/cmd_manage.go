package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newRenewCmd(cfg *config) *cobra.Command {
	var years int
	var promo string

	cmd := &cobra.Command{
		Use:   "renew <domain>",
		Short: "Renew a domain registration (charges the account)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cfg.newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.DomainsRenew(cmd.Context(), args[0], years, promo)
			if err != nil {
				return runErr(cmd, err)
			}

			return writeObject(os.Stdout, cfg.outFormat, result, [][2]string{
				{"Domain", result.DomainName},
				{"Renewed", yesNo(result.Renewed)},
				{"Charged", fmt.Sprintf("%.2f", result.ChargedAmount)},
				{"Order ID", strconv.Itoa(result.OrderID)},
				{"Expires", result.ExpiredDate.Format(listDateLayout)},
			})
		},
	}

	cmd.SetFlagErrorFunc(usageErr)
	cmd.Flags().IntVar(&years, "years", 1, "Renewal period in years (1-10)")
	cmd.Flags().StringVar(&promo, "promo", "", "Promotion code")

	return cmd
}

func newReactivateCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reactivate <domain>",
		Short: "Reactivate an expired domain (charges the account)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cfg.newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.DomainsReactivate(cmd.Context(), args[0])
			if err != nil {
				return runErr(cmd, err)
			}

			return writeObject(os.Stdout, cfg.outFormat, result, [][2]string{
				{"Domain", result.Domain},
				{"Reactivated", yesNo(result.IsSuccess)},
				{"Charged", fmt.Sprintf("%.2f", result.ChargedAmount)},
				{"Order ID", strconv.Itoa(result.OrderID)},
			})
		},
	}

	cmd.SetFlagErrorFunc(usageErr)
	return cmd
}

func newLockCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock <domain> [on|off]",
		Short: "Show or change the registrar transfer lock",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cfg.newClient(cmd)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				locked, err := client.DomainsGetRegistrarLock(cmd.Context(), args[0])
				if err != nil {
					return runErr(cmd, err)
				}
				state := "unlocked"
				if locked {
					state = "locked"
				}
				fmt.Fprintf(os.Stdout, "%s\t%s\n", args[0], state)
				return nil
			}

			var lock bool
			switch args[1] {
			case "on":
				lock = true
			case "off":
				lock = false
			default:
				return usageErr(cmd, fmt.Errorf("invalid lock action %q (use on|off)", args[1]))
			}

			result, err := client.DomainsSetRegistrarLock(cmd.Context(), args[0], lock)
			if err != nil {
				return runErr(cmd, err)
			}
			return writeObject(os.Stdout, cfg.outFormat, result, [][2]string{
				{"Domain", result.Domain},
				{"Success", yesNo(result.IsSuccess)},
			})
		},
	}

	cmd.SetFlagErrorFunc(usageErr)
	return cmd
}
