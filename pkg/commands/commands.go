// Package commands provides high-level command implementations for nvy.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the profile engine.
//
// Each command is implemented in its own subdirectory:
//   - use/        - RunUse command, the profile switch
//   - initialize/ - RunInit command
//   - list/       - ListProfiles command
//   - profile/    - SetProfile and RemoveProfile commands
//   - target/     - GetTarget and SetTarget commands
//   - show/       - ShowConfig command
//   - internal/   - Shared project loading
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"github.com/arthur-debert/nvy/pkg/commands/initialize"
	"github.com/arthur-debert/nvy/pkg/commands/list"
	"github.com/arthur-debert/nvy/pkg/commands/profile"
	"github.com/arthur-debert/nvy/pkg/commands/show"
	"github.com/arthur-debert/nvy/pkg/commands/target"
	"github.com/arthur-debert/nvy/pkg/commands/use"
	"github.com/arthur-debert/nvy/pkg/types"
)

// RunUse switches the environment to the requested profiles.
type UseOptions = use.UseOptions

func RunUse(opts UseOptions) (*types.UseResult, error) {
	return use.RunUse(opts)
}

// RunInit generates nvy.yaml from the env files of a directory.
type InitOptions = initialize.InitOptions

func RunInit(opts InitOptions) (*types.InitResult, error) {
	return initialize.RunInit(opts)
}

// ListProfiles lists the configured profiles.
type ListProfilesOptions = list.ListProfilesOptions

func ListProfiles(opts ListProfilesOptions) (*types.ListProfilesResult, error) {
	return list.ListProfiles(opts)
}

// SetProfile points a profile at an env file.
type SetProfileOptions = profile.SetProfileOptions

func SetProfile(opts SetProfileOptions) error {
	return profile.SetProfile(opts)
}

// RemoveProfile deletes a profile.
type RemoveProfileOptions = profile.RemoveProfileOptions

func RemoveProfile(opts RemoveProfileOptions) (bool, error) {
	return profile.RemoveProfile(opts)
}

// GetTarget and SetTarget read and change the output target.
type TargetOptions = target.TargetOptions

func GetTarget(opts TargetOptions) (string, error) {
	return target.GetTarget(opts)
}

func SetTarget(opts TargetOptions) error {
	return target.SetTarget(opts)
}

// ShowConfig summarizes the project configuration.
type ShowConfigOptions = show.ShowConfigOptions

func ShowConfig(opts ShowConfigOptions) (*types.ConfigSummary, error) {
	return show.ShowConfig(opts)
}
