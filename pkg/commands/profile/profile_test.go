// pkg/commands/profile/profile_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS, TestEnvironment
// PURPOSE: Test adding, replacing and removing profiles

package profile_test

import (
	"testing"

	"github.com/arthur-debert/nvy/pkg/commands/profile"
	"github.com/arthur-debert/nvy/pkg/errors"
	"github.com/arthur-debert/nvy/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetProfile(t *testing.T) {
	t.Run("adds_profile", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WithConfig("sh", map[string]string{"default": ".env"})
		env.WriteFile(".env.staging", "A=1\n")

		err := profile.SetProfile(profile.SetProfileOptions{
			Dir:        env.ProjectDir,
			Name:       "staging",
			File:       ".env.staging",
			FileSystem: env.FS,
		})
		require.NoError(t, err)

		assert.Equal(t, "target: sh\nprofiles:\n  default:\n    - path: .env\n  staging:\n    - path: .env.staging\n",
			env.ReadFile("nvy.yaml"))
	})

	t.Run("replaces_existing_path", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WriteFile("nvy.yaml", "target: out.env\nprofiles:\n  default:\n    - path: .env\n  prod:\n    - path: a\n    - path: b\n")
		env.WriteFile(".env.production", "A=1\n")

		err := profile.SetProfile(profile.SetProfileOptions{
			Dir:        env.ProjectDir,
			Name:       "prod",
			File:       ".env.production",
			FileSystem: env.FS,
		})
		require.NoError(t, err)

		cfg := env.LoadConfig()
		assert.Equal(t, "out.env", cfg.Target)
		path, err := cfg.ProfilePath("prod")
		require.NoError(t, err)
		assert.Equal(t, env.Path(".env.production"), path)
		assert.True(t, cfg.HasProfile("default"))
	})

	t.Run("file_must_exist", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WithConfig("sh", map[string]string{"default": ".env"})

		err := profile.SetProfile(profile.SetProfileOptions{
			Dir:        env.ProjectDir,
			Name:       "ghost",
			File:       ".env.ghost",
			FileSystem: env.FS,
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
		assert.Contains(t, err.Error(), "File .env.ghost does not exist in the current directory.")
		assert.False(t, env.LoadConfig().HasProfile("ghost"))
	})

	t.Run("no_config", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WriteFile(".env", "A=1\n")

		err := profile.SetProfile(profile.SetProfileOptions{
			Dir:        env.ProjectDir,
			Name:       "default",
			File:       ".env",
			FileSystem: env.FS,
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound))
	})
}

func TestRemoveProfile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WithConfig("sh", map[string]string{"default": ".env", "prod": ".env.prod"})

	removed, err := profile.RemoveProfile(profile.RemoveProfileOptions{
		Dir:        env.ProjectDir,
		Name:       "prod",
		FileSystem: env.FS,
	})
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []string{"default"}, env.LoadConfig().ProfileNames())

	removed, err = profile.RemoveProfile(profile.RemoveProfileOptions{
		Dir:        env.ProjectDir,
		Name:       "prod",
		FileSystem: env.FS,
	})
	require.NoError(t, err)
	assert.False(t, removed)
}
