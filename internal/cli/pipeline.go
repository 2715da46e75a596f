package cli

import (
	"os"

	"github.com/arthur-debert/overlay/pkg/filesystem"
	"github.com/arthur-debert/overlay/pkg/logging"
	"github.com/arthur-debert/overlay/pkg/packs"
	"github.com/arthur-debert/overlay/pkg/repository"
	"github.com/arthur-debert/overlay/pkg/types"
	"github.com/arthur-debert/overlay/pkg/ui"
	"github.com/spf13/cobra"
)

// session is a discovered and loaded set of packs
type session struct {
	fs      types.FS
	packs   []packs.Pack
	builder *repository.Builder
}

// loadSession discovers the packs under the root and loads them all
func loadSession(opts *globalOptions) (*session, error) {
	logger := logging.GetLogger("cli")

	root, err := opts.packsRoot()
	if err != nil {
		return nil, err
	}

	fsys := filesystem.NewOS()
	found, err := packs.Discover(fsys, root, packs.OptionsFromConfig(opts.cfg))
	if err != nil {
		return nil, err
	}

	builder := repository.NewBuilder(fsys)
	if err := packs.LoadAll(builder, found); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", root).
		Strs("packs", packs.Names(found)).
		Msg("Packs loaded")
	return &session{fs: fsys, packs: found, builder: builder}, nil
}

// newRenderer renders to the command's output in the configured format
func newRenderer(cmd *cobra.Command, opts *globalOptions) (*ui.Renderer, error) {
	format, err := ui.ParseFormat(opts.cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()
	file, _ := out.(*os.File)
	return ui.NewRenderer(out, ui.Resolve(format, file))
}
