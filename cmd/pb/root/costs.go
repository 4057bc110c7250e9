package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"pitchbuild/internal/engine"
	"pitchbuild/internal/ui"
)

func newCostsCmd() *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "costs",
		Short: "Show the AP cost schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, rules, err := loadRules()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("from") || cmd.Flags().Changed("to") {
				fmt.Fprintln(out, ui.LabelValue(fmt.Sprintf("%d → %d", from, to), fmt.Sprintf("%d AP", rules.Schedule.RangeCost(from, to))))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconBolt, "Cost schedule ("+rules.Name+")"))
			lo := engine.MinAttributeValue
			for _, b := range rules.Schedule {
				fmt.Fprintf(out, "  %2d–%s  %2d AP/point\n", lo, ui.Value(b.UpTo), b.PerPoint)
				lo = b.UpTo + 1
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render("Star steps"))
			for s := engine.MinStars + 1; s <= engine.MaxStars; s++ {
				fmt.Fprintf(out, "  %s  %d AP (value %d)\n", ui.Stars(s, engine.MaxStars), rules.Stars.StepCost(rules.Schedule, s), rules.Stars.Value(s))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "Price a raise starting at this value")
	cmd.Flags().IntVar(&to, "to", 0, "Price a raise ending at this value")

	return cmd
}
