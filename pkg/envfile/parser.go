package envfile

import (
	"strings"

	"github.com/arthur-debert/nvy/pkg/errors"
	"github.com/arthur-debert/nvy/pkg/types"
)

// Parse splits raw file content into its key=value lines in file order.
// Lines that are blank, start with '#', or contain no '=' are dropped.
// Keys are not validated here; see IsValidKey.
func Parse(content []byte) []types.ParsedLine {
	var lines []types.ParsedLine

	// CRLF line endings count as LF
	text := strings.ReplaceAll(string(content), "\r\n", "\n")

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		lines = append(lines, types.ParsedLine{
			LineIndex: i,
			Key:       strings.TrimSpace(key),
			Value:     strings.TrimSpace(value),
		})
	}

	return lines
}

// ParseFile reads and parses the file at path. A file that cannot be read
// is an error, never an empty profile.
func ParseFile(fs types.FS, path string) ([]types.ParsedLine, error) {
	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read env file %s", path).
			WithDetail("path", path)
	}
	return Parse(content), nil
}

// ValidLines returns the lines whose key passes IsValidKey, preserving order,
// and the lines that were dropped.
func ValidLines(lines []types.ParsedLine) (valid, dropped []types.ParsedLine) {
	for _, line := range lines {
		if IsValidKey(line.Key) {
			valid = append(valid, line)
		} else {
			dropped = append(dropped, line)
		}
	}
	return valid, dropped
}
