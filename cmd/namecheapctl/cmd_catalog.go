package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbramble/namecheap-go/namecheap"
)

func newTldsCmd(cfg *config) *cobra.Command {
	var registerableOnly bool

	cmd := &cobra.Command{
		Use:   "tlds",
		Short: "List the TLDs supported by the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cfg.newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.DomainsGetTldList(cmd.Context())
			if err != nil {
				return runErr(cmd, err)
			}

			rows := result.Tlds
			if registerableOnly {
				filtered := rows[:0]
				for _, t := range rows {
					if t.IsApiRegisterable {
						filtered = append(filtered, t)
					}
				}
				rows = filtered
			}

			return writeRows(os.Stdout, cfg.outFormat, rows,
				"TLD\tTYPE\tMIN YEARS\tMAX YEARS\tREGISTERABLE\tRENEWABLE",
				func(t namecheap.Tld) string {
					return fmt.Sprintf("%s\t%s\t%d\t%d\t%s\t%s",
						t.Name, t.Type, t.MinRegisterYears, t.MaxRegisterYears,
						yesNo(t.IsApiRegisterable), yesNo(t.IsApiRenewable))
				})
		},
	}

	cmd.SetFlagErrorFunc(usageErr)
	cmd.Flags().BoolVar(&registerableOnly, "registerable-only", false, "Only list TLDs registerable through the API")

	return cmd
}

func newPricingCmd(cfg *config) *cobra.Command {
	var productType, category, action, product, promo string

	cmd := &cobra.Command{
		Use:   "pricing",
		Short: "Show the price catalog for a product type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cfg.newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.UsersGetPricing(cmd.Context(), namecheap.PricingRequest{
				ProductType:     strings.ToUpper(productType),
				ProductCategory: category,
				ActionName:      action,
				ProductName:     product,
				PromotionCode:   promo,
			})
			if err != nil {
				return runErr(cmd, err)
			}

			type tierRow struct {
				Category string  `json:"category"`
				Product  string  `json:"product"`
				Duration int     `json:"duration"`
				Unit     string  `json:"unit"`
				Price    float64 `json:"price"`
				Regular  float64 `json:"regularPrice"`
				Yours    float64 `json:"yourPrice"`
				Currency string  `json:"currency"`
			}
			var rows []tierRow
			for _, c := range result.Categories {
				for _, p := range c.Products {
					for _, t := range p.Tiers {
						rows = append(rows, tierRow{
							Category: c.Name,
							Product:  p.Name,
							Duration: t.Duration,
							Unit:     t.DurationType,
							Price:    t.Price,
							Regular:  t.RegularPrice,
							Yours:    t.YourPrice,
							Currency: t.Currency,
						})
					}
				}
			}

			return writeRows(os.Stdout, cfg.outFormat, rows,
				"CATEGORY\tPRODUCT\tDURATION\tPRICE\tREGULAR\tYOURS\tCURRENCY",
				func(r tierRow) string {
					return fmt.Sprintf("%s\t%s\t%d %s\t%.2f\t%.2f\t%.2f\t%s",
						r.Category, r.Product, r.Duration, strings.ToLower(r.Unit),
						r.Price, r.Regular, r.Yours, r.Currency)
				})
		},
	}

	cmd.SetFlagErrorFunc(usageErr)
	cmd.Flags().StringVar(&productType, "type", "domain", "Product type: domain|ssl|whoisguard")
	cmd.Flags().StringVar(&category, "category", "", "Product category (e.g. register, renew)")
	cmd.Flags().StringVar(&action, "action", "", "Action name (e.g. REGISTER, RENEW)")
	cmd.Flags().StringVar(&product, "product", "", "Product name (e.g. com)")
	cmd.Flags().StringVar(&promo, "promo", "", "Promotion code")

	return cmd
}
