package root

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pitchbuild/internal/engine"
	"pitchbuild/internal/ui"
)

func newBudgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget [level]",
		Short: "Show AP granted per level",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, rules, err := loadRules()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				lvl, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("level must be a number: %q", args[0])
				}
				lvl = rules.ClampLevel(lvl)
				fmt.Fprintln(out, ui.LabelValue(fmt.Sprintf("Level %d", lvl), fmt.Sprintf("%d AP", rules.Granted(lvl))))
				fmt.Fprintln(out, ui.LabelValue("Slots", fmt.Sprintf("%d/%d", engine.CountUnlockedSlots(lvl), len(engine.PlaystyleSlots))))
				if next := engine.NextSlotLevel(lvl); next > 0 {
					fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("next slot at level %d", next)))
				}
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconBolt, "AP by level ("+rules.Name+")"))
			for lvl := 1; lvl <= rules.MaxLevel; lvl++ {
				line := fmt.Sprintf("  %2d  +%-3d  %4d AP", lvl, rules.Awards.Award(lvl), rules.Granted(lvl))
				for _, s := range engine.PlaystyleSlots {
					if s.MinLevel == lvl {
						line += "  " + ui.Good.Render(ui.IconUnlock+" slot")
					}
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	return cmd
}
