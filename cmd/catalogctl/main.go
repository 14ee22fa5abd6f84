package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aussiebroadwan/democat/pkg/catalogsdk"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// cli holds the connection settings shared by every subcommand.
type cli struct {
	BaseURL  string
	Email    string
	Password string
	Out      string // "text" | "json" | "yaml"
	Timeout  time.Duration

	w io.Writer
}

// session logs in with the configured credentials.
func (c *cli) session(ctx context.Context) (*catalogsdk.Session, error) {
	if c.Email == "" || c.Password == "" {
		return nil, fmt.Errorf("credentials missing (set --email/--password or CATALOG_EMAIL/CATALOG_PASSWORD)")
	}
	sdk := catalogsdk.NewSDKClient(c.BaseURL)
	sdk.HTTPClient.Timeout = c.Timeout
	return sdk.Login(ctx, c.Email, c.Password)
}

// print writes v in the structured output format, or calls text for the
// default text format.
func (c *cli) print(v any, text func()) error {
	switch c.Out {
	case "json":
		enc := json.NewEncoder(c.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		// Go through JSON so keys match the wire field names.
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}
		enc := yaml.NewEncoder(c.w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	text()
	return nil
}

func main() {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	c := &cli{
		BaseURL:  envOr("CATALOG_URL", "http://localhost:8080"),
		Email:    os.Getenv("CATALOG_EMAIL"),
		Password: os.Getenv("CATALOG_PASSWORD"),
		Out:      envOr("CATALOG_OUT", "text"),
		Timeout:  30 * time.Second,
		w:        os.Stdout,
	}

	if err := newRootCmd(c).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Admin CLI for the demo catalog service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch c.Out {
			case "text", "json", "yaml":
				return nil
			}
			return fmt.Errorf("--out must be text, json or yaml, got %q", c.Out)
		},
	}

	root.PersistentFlags().StringVar(&c.BaseURL, "url", c.BaseURL, "Catalog service base URL (env CATALOG_URL)")
	root.PersistentFlags().StringVar(&c.Email, "email", c.Email, "Admin email (env CATALOG_EMAIL)")
	root.PersistentFlags().StringVar(&c.Password, "password", c.Password, "Admin password (env CATALOG_PASSWORD)")
	root.PersistentFlags().StringVar(&c.Out, "out", c.Out, "Output format: text|json|yaml (env CATALOG_OUT)")
	root.PersistentFlags().DurationVar(&c.Timeout, "timeout", c.Timeout, "HTTP timeout")

	root.AddCommand(
		loginCmd(c),
		clientsCmd(c),
		requestsCmd(c),
	)
	return root
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
