package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tbramble/namecheap-go/namecheap"
)

func newContactsCmd(cfg *config) *cobra.Command {
	var cf contactFlags
	var set bool

	cmd := &cobra.Command{
		Use:   "contacts <domain>",
		Short: "Show or replace the contact sets on record for a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cfg.newClient(cmd)
			if err != nil {
				return err
			}

			if set {
				result, err := client.DomainsSetContacts(cmd.Context(), args[0], cf.contacts())
				if err != nil {
					return runErr(cmd, err)
				}
				return writeObject(os.Stdout, cfg.outFormat, result, [][2]string{
					{"Domain", result.Domain},
					{"Success", yesNo(result.IsSuccess)},
				})
			}

			result, err := client.DomainsGetContacts(cmd.Context(), args[0])
			if err != nil {
				return runErr(cmd, err)
			}

			type roleRow struct {
				Role    string            `json:"role"`
				Contact namecheap.Contact `json:"contact"`
			}
			rows := []roleRow{
				{"Registrant", result.Registrant},
				{"Tech", result.Tech},
				{"Admin", result.Admin},
				{"AuxBilling", result.AuxBilling},
			}
			return writeRows(os.Stdout, cfg.outFormat, rows,
				"ROLE\tNAME\tEMAIL\tPHONE\tCITY\tCOUNTRY",
				func(r roleRow) string {
					return r.Role + "\t" + r.Contact.FirstName + " " + r.Contact.LastName +
						"\t" + r.Contact.EmailAddress + "\t" + r.Contact.Phone +
						"\t" + r.Contact.City + "\t" + r.Contact.Country
				})
		},
	}

	cmd.SetFlagErrorFunc(usageErr)
	cf.register(cmd)
	cmd.Flags().BoolVar(&set, "set", false, "Replace all four contact roles with the given contact flags")

	return cmd
}
