package cli

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/overlay/pkg/errors"
	"github.com/arthur-debert/overlay/pkg/logging"
	"github.com/arthur-debert/overlay/pkg/sink"
	"github.com/spf13/cobra"
)

func newBuildCmd(opts *globalOptions) *cobra.Command {
	var (
		target string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:     "build",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.build")

			// --target reaches the config as an override
			dir := opts.cfg.Target.Dir
			if dir == "" {
				return errors.New(errors.ErrInvalidInput, MsgErrNoTarget)
			}
			dir, err := filepath.Abs(dir)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "cannot resolve target directory").
					WithDetail("path", dir)
			}

			s, err := loadSession(opts)
			if err != nil {
				return err
			}

			linker := sink.NewLinker(s.fs, dir)
			if err := s.builder.BuildRepository(linker); err != nil {
				return err
			}
			logger.Info().
				Str("target", dir).
				Int("mutations", linker.Len()).
				Bool("dryRun", dryRun).
				Msg("Repository built")

			out := cmd.OutOrStdout()
			if dryRun {
				renderer, err := newRenderer(cmd, opts)
				if err != nil {
					return err
				}
				if err := renderer.RenderPlan(linker.Mutations()); err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.ErrOrStderr(), MsgDryRunNotice, dir)
				return err
			}

			result, err := linker.Apply()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, MsgBuildSummary, dir, len(result.Links), len(result.Replaced), result.Tags)
			return err
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", MsgFlagTarget)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)

	return cmd
}
