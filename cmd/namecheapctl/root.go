package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tbramble/namecheap-go/namecheap"
)

// credentials are read from the environment (a .env file is honored when
// present). They are only required by commands that actually call the API.
type credentials struct {
	APIUser  string `env:"NAMECHEAP_API_USER"`
	APIKey   string `env:"NAMECHEAP_API_KEY"`
	Username string `env:"NAMECHEAP_USERNAME"`
	ClientIP string `env:"NAMECHEAP_CLIENT_IP"`
}

type config struct {
	Version string

	// Global flags.
	VersionFlag bool
	Sandbox     bool
	Timeout     time.Duration
	Format      string
	JSON        bool
	NDJSON      bool
	Plain       bool
	Verbose     bool

	// Derived runtime state.
	creds     credentials
	outFormat outputFormat
}

// newClient builds the API client on first use so that usage-only
// invocations (help, bad flags) work without credentials.
func (cfg *config) newClient(cmd *cobra.Command) (*namecheap.Client, error) {
	c, err := namecheap.NewClient(namecheap.ClientOptions{
		APIUser:   cfg.creds.APIUser,
		APIKey:    cfg.creds.APIKey,
		Username:  cfg.creds.Username,
		ClientIP:  cfg.creds.ClientIP,
		Sandbox:   cfg.Sandbox,
		Timeout:   cfg.Timeout,
		UserAgent: "namecheapctl/" + cfg.Version,
	})
	if err != nil {
		return nil, usageErr(cmd, fmt.Errorf("%w (set NAMECHEAP_API_USER, NAMECHEAP_API_KEY, NAMECHEAP_USERNAME and NAMECHEAP_CLIENT_IP)", err))
	}
	return c, nil
}

func newRootCmd(ver string) *cobra.Command {
	cfg := &config{Version: ver}

	root := &cobra.Command{
		Use:           "namecheapctl",
		Short:         "Manage domains through the Namecheap API",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return &cliError{Code: 2, ShowUsage: true, Cmd: cmd}
		},
	}
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SetFlagErrorFunc(usageErr)

	pf := root.PersistentFlags()
	pf.BoolVar(&cfg.VersionFlag, "version", false, "Print version and exit")
	pf.BoolVar(&cfg.Sandbox, "sandbox", false, "Use the sandbox endpoint instead of production")
	pf.DurationVar(&cfg.Timeout, "timeout", 30*time.Second, "Per-request timeout (e.g. 30s, 2m)")
	pf.StringVar(&cfg.Format, "format", "auto", "Output format: auto|table|ndjson|json|plain")
	pf.BoolVar(&cfg.JSON, "json", false, "Alias for --format json")
	pf.BoolVar(&cfg.NDJSON, "ndjson", false, "Alias for --format ndjson")
	pf.BoolVar(&cfg.Plain, "plain", false, "Alias for --format plain (stable tab-separated)")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose stderr output (request diagnostics)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfg.VersionFlag {
			fmt.Fprintf(os.Stdout, "namecheapctl %s (%s/%s)\n", cfg.Version, runtime.GOOS, runtime.GOARCH)
			return errExit0
		}

		logrus.SetOutput(os.Stderr)
		if cfg.Verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}

		aliases := 0
		for _, set := range []bool{cfg.JSON, cfg.NDJSON, cfg.Plain} {
			if set {
				aliases++
			}
		}
		if aliases > 1 {
			return usageErr(cmd, fmt.Errorf("flags are mutually exclusive: --json, --ndjson, --plain"))
		}
		formatStr := strings.ToLower(strings.TrimSpace(cfg.Format))
		if formatStr != "auto" && formatStr != "" && aliases == 1 {
			return usageErr(cmd, fmt.Errorf("do not combine --format with --json/--ndjson/--plain"))
		}
		switch {
		case cfg.JSON:
			formatStr = "json"
		case cfg.NDJSON:
			formatStr = "ndjson"
		case cfg.Plain:
			formatStr = "plain"
		}
		cfg.outFormat = resolveFormat(formatStr, os.Stdout)

		// Missing .env is fine; variables may come from the environment.
		_ = godotenv.Load()
		if err := env.Parse(&cfg.creds); err != nil {
			return runErr(cmd, fmt.Errorf("failed to read environment: %w", err))
		}

		return nil
	}

	root.AddCommand(newCheckCmd(cfg))
	root.AddCommand(newRegisterCmd(cfg))
	root.AddCommand(newListCmd(cfg))
	root.AddCommand(newInfoCmd(cfg))
	root.AddCommand(newRenewCmd(cfg))
	root.AddCommand(newReactivateCmd(cfg))
	root.AddCommand(newLockCmd(cfg))
	root.AddCommand(newContactsCmd(cfg))
	root.AddCommand(newTldsCmd(cfg))
	root.AddCommand(newPricingCmd(cfg))

	return root
}
