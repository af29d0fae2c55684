package types

// UseResult holds the result of the 'use' command.
type UseResult struct {
	Profiles []string
	Target   OutputTarget
	// Output is the rendered shell script or file content
	Output string
	// Exported and Unset count the instructions in Output
	Exported int
	Unset    int
}

// InitResult holds the result of the 'init' command.
type InitResult struct {
	// Cancelled is set when the user declined to reinitialize
	Cancelled bool
	Target    string
	Profiles  []ProfileInfo
}

// ProfileInfo contains summary information about a single profile.
type ProfileInfo struct {
	Name  string
	Paths []string
}

// ListProfilesResult holds the result of the 'profiles' command.
type ListProfilesResult struct {
	Profiles []ProfileInfo
}

// ConfigSummary holds what the 'config' command displays.
type ConfigSummary struct {
	Target          string
	CurrentProfiles []string
	Profiles        []ProfileInfo
}
