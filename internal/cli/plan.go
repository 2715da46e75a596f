package cli

import (
	"github.com/spf13/cobra"
)

func newPlanCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "plan",
		Short:   MsgPlanShort,
		Long:    MsgPlanLong,
		Example: MsgPlanExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd, opts)
			if err != nil {
				return err
			}

			s, err := loadSession(opts)
			if err != nil {
				return err
			}

			mutations, err := s.builder.Plan()
			if err != nil {
				return err
			}
			return renderer.RenderPlan(mutations)
		},
	}
}
