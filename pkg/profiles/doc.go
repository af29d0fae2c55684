// Package profiles computes what switching profiles does to the environment.
//
// The active profiles of the previous switch are recorded in a sentinel
// environment variable (NV_CURRENT_PROFILE by default). CurrentVars turns
// that value back into the set of keys those profiles exported, and Merge
// combines it with the newly requested profiles into a types.MergeResult:
// the keys to export, each tagged with the profile that owns it, and the
// stale keys to unset.
//
// Precedence is "last one wins", both across requested profiles and across
// duplicate lines within one file.
package profiles
