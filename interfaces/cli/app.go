// Package cli provides the command-line consumer of the advice gateway.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/laokip/advisor/application"
	"github.com/laokip/advisor/domain/advice"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	configPath string
	lang       string

	// newGateway is swappable for tests.
	newGateway func(ctx context.Context, configPath string) (*application.Gateway, func(), error)
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		newGateway: buildGateway,
	}

	app.root = &cobra.Command{
		Use:   "advisor",
		Short: "Localized income planning and investment advice for Laos",
		Long: `advisor generates structured income plans, investment advice, business
analyses, marketing plans, job listings, and market data for the Lao
market, in Lao, Thai, or English. Results are cached locally and reused
when the backend is unreachable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app.root.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "path to config file (yaml or json)")
	app.root.PersistentFlags().StringVarP(&app.lang, "lang", "l", "lo", "output language: lo, th, or en")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newPlanCmd(),
		app.newInvestCmd(),
		app.newStockCmd(),
		app.newMarketingCmd(),
		app.newAnalyzeCmd(),
		app.newJobsCmd(),
		app.newMarketCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// language parses the --lang flag.
func (a *App) language() (advice.Language, error) {
	return advice.ParseLanguage(a.lang)
}

// printResult writes the result as indented JSON, flagging stale
// (degraded) results on stderr.
func (a *App) printResult(result any, stale bool) error {
	if stale {
		fmt.Fprintln(a.stderr, "warning: backend unreachable, showing cached result")
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, string(out))
	return nil
}

// newVersionCmd creates the version command.
func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "advisor version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}
