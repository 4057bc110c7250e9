package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pitchbuild/internal/ui"
)

func newBuildsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "builds",
		Short: "List saved builds",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, _, cleanup, err := openSession(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			names, err := sess.ListBuilds(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no saved builds)"))
				return nil
			}
			fmt.Fprintln(out, ui.Heading(ui.IconSave, "Saved builds"))
			for _, n := range names {
				fmt.Fprintf(out, "- %s\n", n)
			}
			return nil
		},
	}

	cmd.AddCommand(newBuildsShowCmd(), newBuildsDeleteCmd(), newBuildsPurgeCmd())
	return cmd
}

func newBuildsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a saved build",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("build name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, cat, cleanup, err := openSession(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := sess.Load(ctx, args[0]); err != nil {
				return err
			}
			printBuild(cmd.OutOrStdout(), sess, cat)
			return nil
		},
	}
}

func newBuildsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved build",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("build name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, _, cleanup, err := openSession(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := sess.DeleteBuild(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("Deleted %q", args[0])))
			return nil
		},
	}
}

func newBuildsPurgeCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete every saved build, even an unreadable store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("purge deletes every saved build; pass --yes to confirm")
			}
			ctx := context.Background()
			sess, _, cleanup, err := openSession(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := sess.PurgeBuilds(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("All saved builds deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
	return cmd
}
