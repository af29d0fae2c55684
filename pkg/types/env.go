package types

// ParsedLine is one retained key=value line of an env file.
type ParsedLine struct {
	// LineIndex is the zero-based line number in the source file
	LineIndex int
	Key       string
	Value     string
}

// EnvVar is a single export or unset instruction produced by a merge.
type EnvVar struct {
	Key string
	// Value is nil for an unset instruction
	Value *string
	// SourceProfile is the profile that contributed the value. Empty for unsets.
	SourceProfile string
	// Line is the index of the defining line within the source profile's file
	Line int
}

// IsUnset reports whether the variable is an unset instruction.
func (v EnvVar) IsUnset() bool {
	return v.Value == nil
}

// StringValue returns the value, or "" for an unset instruction.
func (v EnvVar) StringValue() string {
	if v.Value == nil {
		return ""
	}
	return *v.Value
}

// NewExport creates an export instruction for key owned by profile.
func NewExport(key, value, profile string, line int) EnvVar {
	return EnvVar{Key: key, Value: &value, SourceProfile: profile, Line: line}
}

// NewUnset creates an unset instruction for key.
func NewUnset(key string) EnvVar {
	return EnvVar{Key: key}
}

// MergeResult is the diff between the previously active profiles and the
// newly requested ones. A key is never in both Unset and Export.
type MergeResult struct {
	Unset        map[string]EnvVar
	Export       map[string]EnvVar
	ProfileOrder []string
}
