package cli

import (
	"github.com/arthur-debert/overlay/pkg/packs"
	"github.com/spf13/cobra"
)

func newOrderCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "order [packs...]",
		Short: MsgOrderShort,
		Long:  MsgOrderLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd, opts)
			if err != nil {
				return err
			}

			s, err := loadSession(opts)
			if err != nil {
				return err
			}

			// Unknown names are reported against every discovered pack
			if _, err := packs.Select(s.packs, args); err != nil {
				return err
			}

			order, err := s.builder.Order(args...)
			if err != nil {
				return err
			}
			return renderer.RenderOrder(order)
		},
	}
}
