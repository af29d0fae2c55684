package nvy

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort           = "Switch between sets of environment variables"
	MsgUseShort            = "Activate one or more profiles"
	MsgInitShort           = "Create nvy.yaml from the env files in the current directory"
	MsgProfilesShort       = "List the configured profiles"
	MsgProfilesSetShort    = "Point a profile at an env file"
	MsgProfilesRemoveShort = "Remove a profile"
	MsgTargetShort         = "Show the output target"
	MsgTargetSetShort      = "Change the output target"
	MsgConfigShort         = "Show the project configuration and active profiles"
	MsgSettingsShort       = "Show the effective user settings"
	MsgSnippetShort        = "Output a shell function that evaluates nvy use"
	MsgTopicsShort         = "Display available documentation topics"
	MsgTopicsLong          = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort        = "Print the version of nvy"
	MsgCompletionShort     = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDir     = "Project directory holding nvy.yaml (defaults to the current directory)"

	// Status messages
	MsgInitPrompt        = "An existing nvy configuration file was found in the current directory.\nDo you want to reinitialize? [Y/n] "
	MsgInitCancelled     = "Initialization cancelled."
	MsgInitDone          = "Initialized nvy.yaml in the current directory."
	MsgUseFileWritten    = "Wrote %d variables from %s to %s"
	MsgNoProfiles        = "No profiles defined."
	MsgProfilesHeader    = "profiles:"
	MsgProfileSet        = "Set profile %s with path %s"
	MsgProfileRemoved    = "Removed profile %s"
	MsgProfileNotPresent = "Profile %s does not exist."
	MsgTargetSet         = "Target set to %s"
	MsgNoneActive        = "none"
	MsgVersionFormat     = "nvy %s (commit %s, built %s)\n"

	// Field names
	MsgFieldTarget  = "target"
	MsgFieldCurrent = "current"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrWorkingDir  = "failed to determine the current directory: %w"
	MsgErrSettings    = "failed to load settings: %w"
	MsgErrEncodeToml  = "failed to encode settings: %w"
	MsgErrHelpMissing = "help command not found"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/use-long.txt
	msgUseLongRaw string
	MsgUseLong    = strings.TrimSpace(msgUseLongRaw)

	//go:embed msgs/use-example.txt
	msgUseExampleRaw string
	MsgUseExample    = strings.TrimSpace(msgUseExampleRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/profiles-long.txt
	msgProfilesLongRaw string
	MsgProfilesLong    = strings.TrimSpace(msgProfilesLongRaw)

	//go:embed msgs/profiles-example.txt
	msgProfilesExampleRaw string
	MsgProfilesExample    = strings.TrimSpace(msgProfilesExampleRaw)

	//go:embed msgs/target-long.txt
	msgTargetLongRaw string
	MsgTargetLong    = strings.TrimSpace(msgTargetLongRaw)

	//go:embed msgs/settings-long.txt
	msgSettingsLongRaw string
	MsgSettingsLong    = strings.TrimSpace(msgSettingsLongRaw)

	//go:embed msgs/snippet-long.txt
	msgSnippetLongRaw string
	MsgSnippetLong    = strings.TrimSpace(msgSnippetLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
