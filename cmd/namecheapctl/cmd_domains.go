package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbramble/namecheap-go/namecheap"
)

const listDateLayout = "2006-01-02"

func newListCmd(cfg *config) *cobra.Command {
	var listType string
	var search string
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List domains in the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cfg.newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.DomainsGetList(cmd.Context(), namecheap.GetListRequest{
				ListType:   strings.ToUpper(listType),
				SearchTerm: search,
				Page:       page,
				PageSize:   pageSize,
			})
			if err != nil {
				return runErr(cmd, err)
			}

			if err := writeRows(os.Stdout, cfg.outFormat, result.Domains,
				"NAME\tEXPIRES\tEXPIRED\tLOCKED\tAUTO-RENEW\tWHOISGUARD",
				func(d namecheap.DomainSummary) string {
					return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s",
						d.Name, d.Expires.Format(listDateLayout), yesNo(d.IsExpired),
						yesNo(d.IsLocked), yesNo(d.AutoRenew), d.WhoisGuard)
				}); err != nil {
				return runErr(cmd, err)
			}

			if cfg.outFormat == formatTable && result.Paging.TotalItems > len(result.Domains) {
				fmt.Fprintf(os.Stderr, "page %d of %d items (page size %d)\n",
					result.Paging.CurrentPage, result.Paging.TotalItems, result.Paging.PageSize)
			}
			return nil
		},
	}

	cmd.SetFlagErrorFunc(usageErr)
	cmd.Flags().StringVar(&listType, "type", "all", "List type: all|expiring|expired")
	cmd.Flags().StringVar(&search, "search", "", "Filter by search term")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "Domains per page (10-100)")

	return cmd
}

func newInfoCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <domain>",
		Short: "Show registration metadata for a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cfg.newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.DomainsGetInfo(cmd.Context(), args[0])
			if err != nil {
				return runErr(cmd, err)
			}

			return writeObject(os.Stdout, cfg.outFormat, result, [][2]string{
				{"Domain", result.DomainName},
				{"ID", strconv.Itoa(result.ID)},
				{"Owner", result.OwnerName},
				{"Is owner", yesNo(result.IsOwner)},
				{"Status", result.Status},
				{"Created", result.CreatedDate.Format(listDateLayout)},
				{"Expires", result.ExpiredDate.Format(listDateLayout)},
				{"WhoisGuard", yesNo(result.WhoisGuardEnabled)},
				{"DNS provider", result.DNSProviderType},
				{"Nameservers", strings.Join(result.Nameservers, ", ")},
			})
		},
	}

	cmd.SetFlagErrorFunc(usageErr)
	return cmd
}
