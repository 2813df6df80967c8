package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tbramble/namecheap-go/namecheap"
)

func newRegisterCmd(cfg *config) *cobra.Command {
	var cf contactFlags
	var years int
	var promo string
	var nameservers []string
	var whoisguard bool

	cmd := &cobra.Command{
		Use:   "register <domain>",
		Short: "Register a new domain (charges the account)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cfg.newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.DomainsCreate(cmd.Context(), &namecheap.CreateRequest{
				DomainName:        args[0],
				Years:             years,
				Contacts:          cf.contacts(),
				PromotionCode:     promo,
				Nameservers:       nameservers,
				AddFreeWhoisguard: whoisguard,
				WGEnabled:         whoisguard,
			})
			if err != nil {
				return runErr(cmd, err)
			}

			return writeObject(os.Stdout, cfg.outFormat, result, [][2]string{
				{"Domain", result.Domain},
				{"Registered", yesNo(result.Registered)},
				{"Charged", fmt.Sprintf("%.2f", result.ChargedAmount)},
				{"Order ID", strconv.Itoa(result.OrderID)},
				{"Transaction ID", strconv.Itoa(result.TransactionID)},
				{"WhoisGuard", yesNo(result.WhoisguardEnable)},
			})
		},
	}

	cmd.SetFlagErrorFunc(usageErr)
	cf.register(cmd)
	cmd.Flags().IntVar(&years, "years", 1, "Registration period in years (1-10)")
	cmd.Flags().StringVar(&promo, "promo", "", "Promotion code")
	cmd.Flags().StringSliceVar(&nameservers, "nameservers", nil, "Custom nameservers (comma separated)")
	cmd.Flags().BoolVar(&whoisguard, "whoisguard", true, "Add and enable free WhoisGuard")

	return cmd
}
