package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pitchbuild/internal/catalog"
	"pitchbuild/internal/engine"
	"pitchbuild/internal/ui"
)

func newArchetypesCmd() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "archetypes",
		Short: "List roles and their archetypes",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			shown := 0
			for _, r := range catalog.Default().Roles() {
				if role != "" && !strings.EqualFold(role, r.Name) {
					continue
				}
				shown++
				fmt.Fprintln(out, ui.Accent(r.Accent, r.Name))
				for _, a := range r.Archetypes {
					fmt.Fprintf(out, "  %s  %s %s  %s %s\n",
						ui.Key.Render(a.Name),
						ui.Muted.Render("SM"), ui.Stars(a.SkillStars, engine.MaxStars),
						ui.Muted.Render("WF"), ui.Stars(a.WeakFootStars, engine.MaxStars),
					)
					if a.Description != "" {
						fmt.Fprintf(out, "    %s\n", a.Description)
					}
					if a.InspiredBy != "" {
						fmt.Fprintf(out, "    %s\n", ui.Muted.Render("Inspired by "+a.InspiredBy))
					}
					fmt.Fprintf(out, "    %s %s\n", ui.Muted.Render("Key:"), strings.Join(a.KeyAttributes, ", "))
					fmt.Fprintf(out, "    %s %s\n", ui.Muted.Render("Playstyles:"), strings.Join(a.Playstyles, ", "))
					fmt.Fprintf(out, "    %s %s\n", ui.Muted.Render("Positions:"), strings.Join(a.Positions, " "))
				}
				fmt.Fprintln(out, "")
			}
			if shown == 0 {
				return fmt.Errorf("unknown role: %s", role)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&role, "role", "r", "", "Only show this role")

	return cmd
}
