package command

// root.go defines the root command and the flags every subcommand shares.

import (
	"context"
	"io"
	"os"

	"creatorhub/cmd/cli/authentication"
	"creatorhub/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:8080"

var apiURL string // Global flag for API server URL

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "creatorhub",
	Short: "creatorhub - command line client for the creator marketplace",
	Long: `creatorhub talks to the creatorhub API. With it you can:
- Register, log in and check who you are logged in as
- Browse creators and brand requirements
- Look up social metrics for a handle
- Rate other users and answer campaign offers

Use "creatorhub [command] --help" to see the flags of each command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree. Called by main.main().
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "✗", err)
		os.Exit(1)
	}
}

func init() {
	defaultURL := defaultAPIURL
	if env := os.Getenv("CREATORHUB_API"); env != "" {
		defaultURL = env
	}
	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "API server URL (env CREATORHUB_API)")
}

// newClient returns an anonymous client.
func newClient() *client.HTTPClient {
	return client.NewHTTPClient(apiURL)
}

// authedClient returns a client carrying the stored session token.
func authedClient() (*client.HTTPClient, *authentication.StoredSession, error) {
	session, err := authentication.GetSession()
	if err != nil {
		return nil, nil, err
	}
	c := newClient()
	c.SetToken(session.Token)
	return c, session, nil
}

var (
	heading = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
	muted   = color.New(color.FgHiBlack)
)

func printSuccess(w io.Writer, format string, args ...any) {
	success.Fprintf(w, "✓ "+format+"\n", args...)
}

func printHeading(w io.Writer, format string, args ...any) {
	heading.Fprintf(w, format+"\n", args...)
}

func printMuted(w io.Writer, format string, args ...any) {
	muted.Fprintf(w, format+"\n", args...)
}
