package cli

import (
	"github.com/spf13/cobra"

	"github.com/laokip/advisor/domain/advice"
)

// planOptions holds options for the plan command.
type planOptions struct {
	bike       bool
	car        bool
	tuktuk     bool
	smartphone bool
	strong     bool
	languages  []string
	education  string
}

// newPlanCmd creates the plan command.
func (a *App) newPlanCmd() *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a personalized daily income plan",
		Long: `Generate a realistic daily income plan for the Lao market based on
your skills and assets.

Examples:
  # Plan for someone with a bike and a smartphone, output in Lao
  advisor plan --bike --smartphone

  # Plan in Thai with spoken languages listed
  advisor plan --lang th --languages lao,thai --education "high school"`,
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

			plan, stale, err := gw.FetchIncomePlan(cmd.Context(), advice.UserSkills{
				HasBike:          opts.bike,
				HasCar:           opts.car,
				HasTuktuk:        opts.tuktuk,
				HasSmartphone:    opts.smartphone,
				PhysicalStrength: opts.strong,
				Languages:        opts.languages,
				Education:        opts.education,
			}, lang)
			if err != nil {
				return err
			}

			return a.printResult(plan, stale)
		},
	}

	cmd.Flags().BoolVar(&opts.bike, "bike", false, "user has a bike")
	cmd.Flags().BoolVar(&opts.car, "car", false, "user has a car")
	cmd.Flags().BoolVar(&opts.tuktuk, "tuktuk", false, "user has a tuktuk")
	cmd.Flags().BoolVar(&opts.smartphone, "smartphone", false, "user has a smartphone")
	cmd.Flags().BoolVar(&opts.strong, "strong", false, "user is physically strong")
	cmd.Flags().StringSliceVar(&opts.languages, "languages", nil, "languages the user speaks")
	cmd.Flags().StringVar(&opts.education, "education", "", "education level")

	return cmd
}
