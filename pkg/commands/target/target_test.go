// pkg/commands/target/target_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS, TestEnvironment
// PURPOSE: Test reading and changing the output target

package target_test

import (
	"testing"

	"github.com/arthur-debert/nvy/pkg/commands/target"
	"github.com/arthur-debert/nvy/pkg/config"
	"github.com/arthur-debert/nvy/pkg/errors"
	"github.com/arthur-debert/nvy/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTarget(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WithConfig("sh", map[string]string{"default": ".env"})

	got, err := target.GetTarget(target.TargetOptions{Dir: env.ProjectDir, FileSystem: env.FS})
	require.NoError(t, err)
	assert.Equal(t, "sh", got)

	t.Setenv(config.EnvTarget, "override.env")
	got, err = target.GetTarget(target.TargetOptions{Dir: env.ProjectDir, FileSystem: env.FS})
	require.NoError(t, err)
	assert.Equal(t, "override.env", got)
}

func TestSetTarget(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WithConfig(".env", map[string]string{"default": ".env"})

	require.NoError(t, target.SetTarget(target.TargetOptions{
		Dir:        env.ProjectDir,
		Value:      "sh",
		FileSystem: env.FS,
	}))
	assert.Equal(t, "target: sh\nprofiles:\n  default:\n    - path: .env\n", env.ReadFile("nvy.yaml"))

	err := target.SetTarget(target.TargetOptions{Dir: env.ProjectDir, Value: " ", FileSystem: env.FS})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestTarget_NoConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	_, err := target.GetTarget(target.TargetOptions{Dir: env.ProjectDir, FileSystem: env.FS})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound))

	err = target.SetTarget(target.TargetOptions{Dir: env.ProjectDir, Value: "sh", FileSystem: env.FS})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound))
}
