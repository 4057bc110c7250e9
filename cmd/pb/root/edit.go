package root

import (
	"context"

	"github.com/spf13/cobra"

	"pitchbuild/internal/tui"
)

func newEditCmd() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "edit [build]",
		Short: "Open the interactive build editor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, cat, cleanup, err := openSession(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 1 && flags.load == "" {
				flags.load = args[0]
			}
			if err := flags.apply(ctx, sess, cat); err != nil {
				return err
			}
			return tui.RunEditor(ctx, sess, accentFor(sess, cat), cmd.OutOrStdout())
		},
	}

	flags.register(cmd)
	return cmd
}
