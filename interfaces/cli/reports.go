package cli

import (
	"github.com/spf13/cobra"
)

// The no-input and single-argument report commands share one shape:
// parse language, build the gateway, fetch, print.

// newStockCmd creates the stock command.
func (a *App) newStockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stock",
		Short: "Analyze the Lao Securities Exchange and local ventures",
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := a.language()
			if err != nil {
				return err
			}

			gw, cleanup, err := a.newGateway(cmd.Context(), a.configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			res, stale, err := gw.FetchStockAnalysis(cmd.Context(), lang)
			if err != nil {
				return err
			}
			return a.printResult(res, stale)
		},
	}
}

// newMarketCmd creates the market command.
func (a *App) newMarketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "market",
		Short: "Fetch current Lao financial market data",
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := a.language()
			if err != nil {
				return err
			}

			gw, cleanup, err := a.newGateway(cmd.Context(), a.configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			res, stale, err := gw.FetchMarketData(cmd.Context(), lang)
			if err != nil {
				return err
			}
			return a.printResult(res, stale)
		},
	}
}

// newMarketingCmd creates the marketing command.
func (a *App) newMarketingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "marketing [idea]",
		Short: "Generate a marketing plan for a business idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := a.language()
			if err != nil {
				return err
			}

			gw, cleanup, err := a.newGateway(cmd.Context(), a.configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			res, stale, err := gw.FetchMarketingPlan(cmd.Context(), args[0], lang)
			if err != nil {
				return err
			}
			return a.printResult(res, stale)
		},
	}
}

// newAnalyzeCmd creates the analyze command.
func (a *App) newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [idea]",
		Short: "Analyze the feasibility of a business idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := a.language()
			if err != nil {
				return err
			}

			gw, cleanup, err := a.newGateway(cmd.Context(), a.configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			res, stale, err := gw.FetchBusinessAnalysis(cmd.Context(), args[0], lang)
			if err != nil {
				return err
			}
			return a.printResult(res, stale)
		},
	}
}

// newJobsCmd creates the jobs command.
func (a *App) newJobsCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Search current job listings by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := a.language()
			if err != nil {
				return err
			}

			gw, cleanup, err := a.newGateway(cmd.Context(), a.configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			jobs, stale, err := gw.FetchJobListings(cmd.Context(), category, lang)
			if err != nil {
				return err
			}
			return a.printResult(jobs, stale)
		},
	}

	cmd.Flags().StringVar(&category, "category", "Service & Labor", "job category to search")

	return cmd
}
