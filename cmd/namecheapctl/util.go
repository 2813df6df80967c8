package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tbramble/namecheap-go/internal/domain"
	"github.com/tbramble/namecheap-go/namecheap"
)

func readDomainsFromArgsAndStdin(args []string, stdin *os.File) ([]string, error) {
	var out []string

	for _, a := range args {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		out = append(out, a)
	}

	if term.IsTerminal(int(stdin.Fd())) {
		// Nothing piped in.
		return out, nil
	}

	stdinDomains, err := domain.ReadLines(stdin)
	if err != nil {
		return nil, err
	}
	out = append(out, stdinDomains...)
	return out, nil
}

// contactFlags collects the flag set shared by register and contacts --set.
// One contact fills all four roles, the common case for individual
// registrants.
type contactFlags struct {
	FirstName    string
	LastName     string
	Organization string
	Address1     string
	Address2     string
	City         string
	State        string
	PostalCode   string
	Country      string
	Phone        string
	Email        string
}

func (cf *contactFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&cf.FirstName, "first-name", "", "Contact first name")
	f.StringVar(&cf.LastName, "last-name", "", "Contact last name")
	f.StringVar(&cf.Organization, "organization", "", "Contact organization (optional)")
	f.StringVar(&cf.Address1, "address1", "", "Contact street address")
	f.StringVar(&cf.Address2, "address2", "", "Contact street address, second line (optional)")
	f.StringVar(&cf.City, "city", "", "Contact city")
	f.StringVar(&cf.State, "state", "", "Contact state or province")
	f.StringVar(&cf.PostalCode, "postal-code", "", "Contact postal code")
	f.StringVar(&cf.Country, "country", "", "Contact country (ISO 3166-1 alpha-2)")
	f.StringVar(&cf.Phone, "phone", "", "Contact phone (+NNN.NNNNNNNNNN)")
	f.StringVar(&cf.Email, "email", "", "Contact email address")
}

func (cf *contactFlags) contacts() namecheap.ContactsRequest {
	return namecheap.AllRoles(namecheap.Contact{
		FirstName:        cf.FirstName,
		LastName:         cf.LastName,
		OrganizationName: cf.Organization,
		Address1:         cf.Address1,
		Address2:         cf.Address2,
		City:             cf.City,
		StateProvince:    cf.State,
		PostalCode:       cf.PostalCode,
		Country:          cf.Country,
		Phone:            cf.Phone,
		EmailAddress:     cf.Email,
	})
}
