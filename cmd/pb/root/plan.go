package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pitchbuild/internal/catalog"
	"pitchbuild/internal/engine"
	"pitchbuild/internal/ui"
)

type buildFlags struct {
	load      string
	archetype string
	level     int
	spec      string
}

func (f *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.load, "load", "", "Start from a saved build")
	cmd.Flags().StringVarP(&f.archetype, "archetype", "a", "", "Archetype as Role/Name or Name (resets attributes)")
	cmd.Flags().IntVarP(&f.level, "level", "l", 0, "Player level")
	cmd.Flags().StringVar(&f.spec, "spec", "", "Specialization ("+strings.Join(engine.Specializations, ", ")+")")
}

// apply loads, selects the archetype, then sets level and specialization.
func (f *buildFlags) apply(ctx context.Context, sess *engine.Session, cat *catalog.Catalog) error {
	if f.load != "" {
		if err := sess.Load(ctx, f.load); err != nil {
			return err
		}
	}
	if f.archetype != "" {
		a, err := resolveArchetype(cat, f.archetype)
		if err != nil {
			return err
		}
		if err := sess.SelectArchetype(a.Role, a.Name); err != nil {
			return err
		}
	}
	if f.level > 0 {
		sess.SetLevel(f.level)
	}
	if f.spec != "" {
		if err := sess.SetSpecialization(f.spec); err != nil {
			return err
		}
	}
	return nil
}

func newPlanCmd() *cobra.Command {
	var flags buildFlags
	var raises []string
	var save string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a build from flags and print it",
		Example: `  pb plan -a Forward/Finisher -l 20 -r Finishing=88 -r WF=4
  pb plan --load striker -r "Shot Power=90" --save striker`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, cat, cleanup, err := openSession(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := flags.apply(ctx, sess, cat); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range raises {
				name, target, err := parseRaise(sess, r)
				if err != nil {
					return err
				}
				reached, err := applyTarget(sess, name, target)
				switch {
				case errors.Is(err, engine.ErrBudgetExceeded), errors.Is(err, engine.ErrBoundaryReached):
					fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf("%s %s stopped at %d: %v", ui.IconWarn, name, reached, err)))
				case err != nil:
					return err
				}
			}

			if save != "" {
				if err := sess.Save(ctx, save); err != nil {
					return err
				}
			}
			printBuild(out, sess, cat)
			if save != "" {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s Saved %q", ui.IconSave, sess.BuildName())))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringArrayVarP(&raises, "raise", "r", nil, "Set attribute to a target value or star count (name=N), repeatable")
	cmd.Flags().StringVar(&save, "save", "", "Save the result under this name")

	return cmd
}

func parseRaise(sess *engine.Session, s string) (string, int, error) {
	raw, val, ok := strings.Cut(s, "=")
	if !ok {
		return "", 0, fmt.Errorf("raise must be name=N: %q", s)
	}
	target, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return "", 0, fmt.Errorf("raise %q: target must be a number", s)
	}
	name, err := resolveAttr(sess.Attributes(), strings.TrimSpace(raw))
	if err != nil {
		return "", 0, err
	}
	return name, target, nil
}

// applyTarget steps name toward target one increment or decrement at a time.
// It returns the value (or star count) reached and the error that stopped it.
func applyTarget(sess *engine.Session, name string, target int) (int, error) {
	level := func() int {
		a, _ := sess.Attribute(name)
		if a.IsStarBased() {
			return a.Stars
		}
		return a.Value
	}
	for cur := level(); cur != target; cur = level() {
		var err error
		if cur < target {
			_, err = sess.Increment(name)
		} else {
			_, err = sess.Decrement(name)
		}
		if err != nil {
			return cur, err
		}
	}
	return target, nil
}
