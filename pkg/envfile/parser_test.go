// pkg/envfile/parser_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS
// PURPOSE: Test env file line parsing and key filtering

package envfile_test

import (
	"testing"

	"github.com/arthur-debert/nvy/pkg/envfile"
	"github.com/arthur-debert/nvy/pkg/errors"
	"github.com/arthur-debert/nvy/pkg/filesystem"
	"github.com/arthur-debert/nvy/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []types.ParsedLine
	}{
		{
			name:    "empty_file",
			content: "",
			want:    nil,
		},
		{
			name:    "simple_pairs",
			content: "APP_ENV=production\nAPI_KEY=456",
			want: []types.ParsedLine{
				{LineIndex: 0, Key: "APP_ENV", Value: "production"},
				{LineIndex: 1, Key: "API_KEY", Value: "456"},
			},
		},
		{
			name:    "comments_and_blank_lines_keep_line_numbers",
			content: "# header\n\nA=1\n   \n  # indented comment\nB=2\n",
			want: []types.ParsedLine{
				{LineIndex: 2, Key: "A", Value: "1"},
				{LineIndex: 5, Key: "B", Value: "2"},
			},
		},
		{
			name:    "splits_on_first_equals_only",
			content: "DATABASE_URL=postgres://u:p@h/db?sslmode=require",
			want: []types.ParsedLine{
				{LineIndex: 0, Key: "DATABASE_URL", Value: "postgres://u:p@h/db?sslmode=require"},
			},
		},
		{
			name:    "trims_key_and_value",
			content: "  SPACED  =   some value  ",
			want: []types.ParsedLine{
				{LineIndex: 0, Key: "SPACED", Value: "some value"},
			},
		},
		{
			name:    "lines_without_equals_are_dropped",
			content: "JUST_A_WORD\nA=1\nexport\n",
			want: []types.ParsedLine{
				{LineIndex: 1, Key: "A", Value: "1"},
			},
		},
		{
			name:    "quotes_are_kept_verbatim",
			content: `GREETING="hello"` + "\n" + `NAME='x'`,
			want: []types.ParsedLine{
				{LineIndex: 0, Key: "GREETING", Value: `"hello"`},
				{LineIndex: 1, Key: "NAME", Value: `'x'`},
			},
		},
		{
			name:    "empty_value",
			content: "EMPTY=",
			want: []types.ParsedLine{
				{LineIndex: 0, Key: "EMPTY", Value: ""},
			},
		},
		{
			name:    "crlf_line_endings",
			content: "A=1\r\nB=2\r\n",
			want: []types.ParsedLine{
				{LineIndex: 0, Key: "A", Value: "1"},
				{LineIndex: 1, Key: "B", Value: "2"},
			},
		},
		{
			name:    "invalid_keys_are_still_parsed",
			content: "INVALID-VAR=456",
			want: []types.ParsedLine{
				{LineIndex: 0, Key: "INVALID-VAR", Value: "456"},
			},
		},
		{
			name:    "duplicate_keys_are_all_reported",
			content: "A=1\nA=2",
			want: []types.ParsedLine{
				{LineIndex: 0, Key: "A", Value: "1"},
				{LineIndex: 1, Key: "A", Value: "2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, envfile.Parse([]byte(tt.content)))
		})
	}
}

func TestParseFile(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	require.NoError(t, fs.WriteFile("/project/.env", []byte("APP=1\n"), 0644))

	t.Run("reads_existing_file", func(t *testing.T) {
		lines, err := envfile.ParseFile(fs, "/project/.env")
		require.NoError(t, err)
		assert.Equal(t, []types.ParsedLine{{LineIndex: 0, Key: "APP", Value: "1"}}, lines)
	})

	t.Run("missing_file_is_an_error", func(t *testing.T) {
		_, err := envfile.ParseFile(fs, "/project/.env.missing")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
		assert.Equal(t, "/project/.env.missing", errors.GetErrorDetails(err)["path"])
	})
}

func TestValidLines(t *testing.T) {
	lines := envfile.Parse([]byte("VALID_VAR=123\nINVALID-VAR=456\nANOTHER_VALID=789\nINVALID@VAR=abc"))

	valid, dropped := envfile.ValidLines(lines)

	require.Len(t, valid, 2)
	assert.Equal(t, "VALID_VAR", valid[0].Key)
	assert.Equal(t, "ANOTHER_VALID", valid[1].Key)
	assert.Equal(t, 2, valid[1].LineIndex)

	require.Len(t, dropped, 2)
	assert.Equal(t, "INVALID-VAR", dropped[0].Key)
	assert.Equal(t, "INVALID@VAR", dropped[1].Key)
}
