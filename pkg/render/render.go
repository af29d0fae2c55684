package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/nvy/pkg/errors"
	"github.com/arthur-debert/nvy/pkg/profiles"
	"github.com/arthur-debert/nvy/pkg/types"
	"mvdan.cc/sh/v3/syntax"
)

// Options tune rendering.
type Options struct {
	// Sentinel is the variable recording the active profiles in shell mode
	Sentinel string
}

// Render renders result for mode.
func Render(result *types.MergeResult, mode types.OutputMode, opts Options) (string, error) {
	switch mode {
	case types.ModeShell:
		return Shell(result, opts.Sentinel)
	case types.ModeFile:
		return File(result), nil
	default:
		return "", errors.Newf(errors.ErrInternal, "unknown output mode %d", mode)
	}
}

// Shell renders result as POSIX shell commands. The script is parsed
// before it is returned, so a malformed line is an error and never output.
func Shell(result *types.MergeResult, sentinel string) (string, error) {
	if sentinel == "" {
		sentinel = profiles.DefaultSentinel
	}
	var b strings.Builder

	unsetKeys := make([]string, 0, len(result.Unset))
	for key := range result.Unset {
		unsetKeys = append(unsetKeys, key)
	}
	sort.Strings(unsetKeys)
	for _, key := range unsetKeys {
		fmt.Fprintf(&b, "unset %s\n", key)
	}

	for _, group := range groups(result) {
		fmt.Fprintf(&b, "# %s\n", group.profile)
		for _, v := range group.vars {
			fmt.Fprintf(&b, "export %s=%s\n", v.Key, EscapeValue(v.StringValue()))
		}
		b.WriteString("\n")
	}

	active := profiles.EncodeActiveSet(result.ProfileOrder)
	fmt.Fprintf(&b, "export %s=%s\n", sentinel, EscapeValue(active))

	script := b.String()
	if err := Validate(script); err != nil {
		return "", err
	}
	return script, nil
}

// File renders result as a flat KEY=value env file. Unsets and the
// sentinel have no meaning in a file and are omitted.
func File(result *types.MergeResult) string {
	var b strings.Builder

	for _, group := range groups(result) {
		fmt.Fprintf(&b, "# %s\n", group.profile)
		for _, v := range group.vars {
			fmt.Fprintf(&b, "%s=%s\n", v.Key, v.StringValue())
		}
		b.WriteString("\n")
	}

	content := strings.TrimRight(b.String(), "\n")
	if content == "" {
		return ""
	}
	return content + "\n"
}

// EscapeValue single-quotes value for a POSIX shell. One pair of matching
// surrounding quotes is stripped first, since env files commonly quote
// values that contain spaces.
func EscapeValue(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '\'' || first == '"') {
			value = value[1 : len(value)-1]
		}
	}
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}

// Validate parses script as POSIX shell. Values are raw bytes and may not
// be UTF-8; they only ever appear single-quoted, where the shell takes every
// byte literally, so such bytes are replaced before parsing.
func Validate(script string) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangPOSIX))
	if _, err := parser.Parse(strings.NewReader(strings.ToValidUTF8(script, "\uFFFD")), "nvy"); err != nil {
		return errors.Wrap(err, errors.ErrRender, "rendered shell output is not valid")
	}
	return nil
}

type group struct {
	profile string
	vars    []types.EnvVar
}

// groups buckets the exports by owning profile, in request order, with
// each bucket ordered by source line. A profile requested twice gets a
// single group at its first position; profiles owning no key get none.
func groups(result *types.MergeResult) []group {
	byProfile := make(map[string][]types.EnvVar)
	for _, v := range result.Export {
		byProfile[v.SourceProfile] = append(byProfile[v.SourceProfile], v)
	}

	var out []group
	seen := make(map[string]bool)
	for _, name := range result.ProfileOrder {
		if seen[name] {
			continue
		}
		seen[name] = true

		vars := byProfile[name]
		if len(vars) == 0 {
			continue
		}
		sort.Slice(vars, func(i, j int) bool {
			if vars[i].Line != vars[j].Line {
				return vars[i].Line < vars[j].Line
			}
			return vars[i].Key < vars[j].Key
		})
		out = append(out, group{profile: name, vars: vars})
	}
	return out
}
