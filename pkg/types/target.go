package types

// TargetShell is the target value that selects shell output.
const TargetShell = "sh"

// OutputMode selects how a merge is rendered.
type OutputMode int

const (
	// ModeShell renders export/unset statements for eval
	ModeShell OutputMode = iota
	// ModeFile renders a flat KEY=value file
	ModeFile
)

// String returns the mode name
func (m OutputMode) String() string {
	switch m {
	case ModeShell:
		return "shell"
	case ModeFile:
		return "file"
	default:
		return "unknown"
	}
}

// OutputTarget is the configured destination for rendered output.
type OutputTarget struct {
	Mode OutputMode
	// Destination is the file written in ModeFile
	Destination string
}

// ParseTarget interprets the raw target setting from the project configuration.
func ParseTarget(raw string) OutputTarget {
	if raw == TargetShell {
		return OutputTarget{Mode: ModeShell}
	}
	return OutputTarget{Mode: ModeFile, Destination: raw}
}

// IsShell reports whether output goes to stdout as shell commands.
func (t OutputTarget) IsShell() bool {
	return t.Mode == ModeShell
}
