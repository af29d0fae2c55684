// pkg/profiles/merge_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: In-memory filesystem
// PURPOSE: Test active-set tracking, precedence and diff computation

package profiles_test

import (
	"sort"
	"testing"

	"github.com/arthur-debert/nvy/pkg/errors"
	"github.com/arthur-debert/nvy/pkg/filesystem"
	"github.com/arthur-debert/nvy/pkg/profiles"
	"github.com/arthur-debert/nvy/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapResolver resolves profile names from a fixed table
type mapResolver map[string]string

func (m mapResolver) ProfilePath(name string) (string, error) {
	path, ok := m[name]
	if !ok {
		return "", errors.Newf(errors.ErrProfileNotFound,
			"Profile %s does not exist in the nvy.yaml file.", name)
	}
	return path, nil
}

func setupFiles(t *testing.T, files map[string]string) types.FS {
	t.Helper()
	fs := filesystem.NewMemoryFS()
	for path, content := range files {
		require.NoError(t, fs.WriteFile(path, []byte(content), 0644))
	}
	return fs
}

func keys(m map[string]types.EnvVar) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var resolver = mapResolver{
	"base":     "/p/.env.base",
	"override": "/p/.env.override",
	"old":      "/p/.env.old",
	"empty":    "/p/.env.empty",
	"gone":     "/p/.env.gone",
}

func TestCurrentVars(t *testing.T) {
	fs := setupFiles(t, map[string]string{
		"/p/.env.base": "BASE_ONLY=value\nSHARED=base\nBAD-KEY=x\n",
		"/p/.env.old":  "OLD=1\n",
	})

	t.Run("no_sentinel", func(t *testing.T) {
		assert.Empty(t, profiles.CurrentVars(fs, resolver, ""))
	})

	t.Run("union_of_valid_keys", func(t *testing.T) {
		got := profiles.CurrentVars(fs, resolver, "base,old")
		assert.Equal(t, map[string]struct{}{
			"BASE_ONLY": {},
			"SHARED":    {},
			"OLD":       {},
		}, got)
	})

	t.Run("stale_profiles_are_skipped", func(t *testing.T) {
		got := profiles.CurrentVars(fs, resolver, "unknown,gone,old")
		assert.Equal(t, map[string]struct{}{"OLD": {}}, got)
	})
}

func TestMerge_Precedence(t *testing.T) {
	fs := setupFiles(t, map[string]string{
		"/p/.env.base":     "BASE_ONLY=value\nSHARED=base\n",
		"/p/.env.override": "SHARED=override\nOVERRIDE_ONLY=value\n",
	})

	result, err := profiles.Merge(fs, resolver, "", []string{"base", "override"})
	require.NoError(t, err)

	assert.Empty(t, result.Unset)
	assert.Equal(t, []string{"base", "override"}, result.ProfileOrder)
	assert.Equal(t, []string{"BASE_ONLY", "OVERRIDE_ONLY", "SHARED"}, keys(result.Export))

	shared := result.Export["SHARED"]
	assert.Equal(t, "override", shared.StringValue())
	assert.Equal(t, "override", shared.SourceProfile)
	assert.Equal(t, 0, shared.Line)

	t.Run("reversed_order", func(t *testing.T) {
		result, err := profiles.Merge(fs, resolver, "", []string{"override", "base"})
		require.NoError(t, err)
		assert.Equal(t, "base", result.Export["SHARED"].StringValue())
		assert.Equal(t, "base", result.Export["SHARED"].SourceProfile)
	})
}

func TestMerge_DuplicateKeyInFile(t *testing.T) {
	fs := setupFiles(t, map[string]string{
		"/p/.env.base": "KEY=first\nOTHER=x\nKEY=second\n",
	})

	result, err := profiles.Merge(fs, resolver, "", []string{"base"})
	require.NoError(t, err)
	assert.Equal(t, "second", result.Export["KEY"].StringValue())
	assert.Equal(t, 2, result.Export["KEY"].Line)
}

func TestMerge_Diff(t *testing.T) {
	fs := setupFiles(t, map[string]string{
		"/p/.env.old":  "OLD_ONLY=1\nKEPT=old\n",
		"/p/.env.base": "KEPT=new\nNEW=1\n",
	})

	result, err := profiles.Merge(fs, resolver, "old", []string{"base"})
	require.NoError(t, err)

	assert.Equal(t, []string{"OLD_ONLY"}, keys(result.Unset))
	assert.True(t, result.Unset["OLD_ONLY"].IsUnset())
	assert.Equal(t, []string{"KEPT", "NEW"}, keys(result.Export))
	for key := range result.Unset {
		assert.NotContains(t, result.Export, key)
	}
}

func TestMerge_InvalidKeysDropped(t *testing.T) {
	fs := setupFiles(t, map[string]string{
		"/p/.env.base": "VALID_VAR=ok\nINVALID-VAR=no\nINVALID.VAR=no\n=empty\n",
	})

	result, err := profiles.Merge(fs, resolver, "", []string{"base"})
	require.NoError(t, err)
	assert.Equal(t, []string{"VALID_VAR"}, keys(result.Export))
}

func TestMerge_EmptyProfile(t *testing.T) {
	fs := setupFiles(t, map[string]string{
		"/p/.env.empty": "# nothing here\n\n",
	})

	result, err := profiles.Merge(fs, resolver, "", []string{"empty"})
	require.NoError(t, err)
	assert.Empty(t, result.Export)
	assert.Empty(t, result.Unset)
	assert.Equal(t, []string{"empty"}, result.ProfileOrder)
}

func TestMerge_Errors(t *testing.T) {
	fs := setupFiles(t, map[string]string{
		"/p/.env.base": "A=1\n",
	})

	tests := []struct {
		name      string
		requested []string
		wantCode  errors.ErrorCode
		wantMsg   string
	}{
		{
			name:      "unknown_profile",
			requested: []string{"base", "nope"},
			wantCode:  errors.ErrProfileNotFound,
			wantMsg:   "Profile nope does not exist",
		},
		{
			name:      "missing_file",
			requested: []string{"base", "gone"},
			wantCode:  errors.ErrProfileFileMissing,
			wantMsg:   "Provided path /p/.env.gone under profile gone does not exist.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := profiles.Merge(fs, resolver, "", tt.requested)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
