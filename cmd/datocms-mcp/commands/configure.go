package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/datocms-community/datocms-mcp/internal/client"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// NewConfigureCommand creates the configure command.
func NewConfigureCommand() *cobra.Command {
	var (
		token       string
		environment string
		endpoint    string
		skipVerify  bool
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Store a default API token and environment",
		Long: `Store a default CMA API token, environment, and endpoint in
$HOME/.datocms-mcp/config.yml. The token is verified against the CMA before
saving unless --skip-verify is given.

Tool calls that carry their own api_token argument always override the
stored default.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure(cmd.Context(), token, environment, endpoint, skipVerify)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "CMA API token (prompted for when omitted)")
	cmd.Flags().StringVar(&environment, "environment", "", "default sandbox environment")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "CMA endpoint URL override")
	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "save without verifying the token against the CMA")

	return cmd
}

func runConfigure(ctx context.Context, token, environment, endpoint string, skipVerify bool) error {
	if token == "" {
		fmt.Print("API token: ")

		byteToken, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			// Not a terminal; fall back to reading a line from stdin.
			reader := bufio.NewReader(os.Stdin)

			line, readErr := reader.ReadString('\n')
			if readErr != nil {
				return fmt.Errorf("reading API token: %w", readErr)
			}

			token = strings.TrimSpace(line)
		} else {
			token = strings.TrimSpace(string(byteToken))

			fmt.Println()
		}
	}

	if token == "" {
		return ErrTokenRequired
	}

	if !skipVerify {
		if err := verifyToken(ctx, token, environment, endpoint); err != nil {
			return fmt.Errorf("verifying token: %w", err)
		}
	}

	config := loadConfig()
	config.APIToken = token
	config.Environment = environment

	if endpoint != "" {
		config.APIEndpoint = endpoint
	}

	if err := saveConfig(config); err != nil {
		return err
	}

	fmt.Println("Configuration saved.")

	return nil
}

// verifyToken performs one authenticated read against the project settings.
func verifyToken(ctx context.Context, token, environment, endpoint string) error {
	c, err := client.New(&dato.Config{
		APIToken:    token,
		Environment: environment,
		APIEndpoint: endpoint,
	})
	if err != nil {
		return err
	}

	site, err := c.Site().Get(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Authenticated against project %q.\n", site.Name)

	return nil
}
