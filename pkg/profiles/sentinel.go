package profiles

import "strings"

// DefaultSentinel is the environment variable recording the active profiles.
const DefaultSentinel = "NV_CURRENT_PROFILE"

// EncodeActiveSet joins profile names into a sentinel value.
// Profile names must not contain commas.
func EncodeActiveSet(profiles []string) string {
	return strings.Join(profiles, ",")
}

// DecodeActiveSet splits a sentinel value into the profile names it lists,
// in order. Blank entries are dropped, so "" decodes to no profiles.
func DecodeActiveSet(value string) []string {
	var profiles []string
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			profiles = append(profiles, name)
		}
	}
	return profiles
}
