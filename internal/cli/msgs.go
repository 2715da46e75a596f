package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Merge packs into a layered virtual repository"
	MsgPlanShort       = "Show what a build would layer at each path"
	MsgBuildShort      = "Materialize the repository under a target directory"
	MsgOrderShort      = "Print the order packs are layered in"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgDryRunNotice   = "DRY RUN MODE - nothing was written to %s\n"
	MsgBuildSummary   = "Built %s: %d links, %d replaced, %d tags\n"
	MsgVersionFormat  = "overlay version %s\n  commit: %s\n  built:  %s\n"
	MsgManPagesFormat = "Man pages written to %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot    = "Packs root directory (default $OVERLAY_ROOT or the current directory)"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/overlay/config.toml)"
	MsgFlagFormat  = "Output format: auto, term, text, json, yaml, toml or xml"
	MsgFlagTarget  = "Directory to build into"
	MsgFlagDryRun  = "Plan and validate without writing anything"
	MsgFlagManDir  = "Directory to write man pages to"

	// Error messages
	MsgErrNoTarget = "no target directory: use --target or set target.dir in the config"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/plan-long.txt
	msgPlanLongRaw string
	MsgPlanLong    = strings.TrimSpace(msgPlanLongRaw)

	//go:embed msgs/plan-example.txt
	msgPlanExampleRaw string
	MsgPlanExample    = strings.TrimRight(msgPlanExampleRaw, "\n")

	//go:embed msgs/build-long.txt
	msgBuildLongRaw string
	MsgBuildLong    = strings.TrimSpace(msgBuildLongRaw)

	//go:embed msgs/build-example.txt
	msgBuildExampleRaw string
	MsgBuildExample    = strings.TrimRight(msgBuildExampleRaw, "\n")

	//go:embed msgs/order-long.txt
	msgOrderLongRaw string
	MsgOrderLong    = strings.TrimSpace(msgOrderLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
