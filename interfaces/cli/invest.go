package cli

import (
	"github.com/spf13/cobra"

	"github.com/laokip/advisor/domain/advice"
)

// investOptions holds options for the invest command.
type investOptions struct {
	capital float64
	bike    bool
	car     bool
	tuktuk  bool
}

// newInvestCmd creates the invest command.
func (a *App) newInvestCmd() *cobra.Command {
	opts := &investOptions{}

	cmd := &cobra.Command{
		Use:   "invest",
		Short: "Generate micro-business investment advice for a capital amount",
		Long: `Generate realistic micro-business options for the Lao market given an
amount of starting capital in LAK.

Examples:
  advisor invest --capital 5000000
  advisor invest --capital 2000000 --bike --lang en`,
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

			res, stale, err := gw.FetchInvestmentAdvice(cmd.Context(), opts.capital, advice.UserSkills{
				HasBike:   opts.bike,
				HasCar:    opts.car,
				HasTuktuk: opts.tuktuk,
			}, lang)
			if err != nil {
				return err
			}

			return a.printResult(res, stale)
		},
	}

	cmd.Flags().Float64Var(&opts.capital, "capital", 0, "starting capital in LAK")
	cmd.Flags().BoolVar(&opts.bike, "bike", false, "user has a bike")
	cmd.Flags().BoolVar(&opts.car, "car", false, "user has a car")
	cmd.Flags().BoolVar(&opts.tuktuk, "tuktuk", false, "user has a tuktuk")

	_ = cmd.MarkFlagRequired("capital")

	return cmd
}
