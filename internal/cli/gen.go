package cli

import (
	"io"

	"github.com/arthur-debert/overlay/internal/version"
	"github.com/arthur-debert/overlay/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// ManHeader is the header shared by every generated man page
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "OVERLAY",
		Section: "1",
		Source:  "overlay " + version.Version,
		Manual:  "overlay manual",
	}
}

// GenCompletion writes the completion script for shell
func GenCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return errors.Newf(errors.ErrInvalidInput, "unknown shell: %s", shell).
		WithDetail("shell", shell).
		WithDetail("supported", []string{"bash", "zsh", "fish", "powershell"})
}
