package profile

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed profiles/*.yaml
var builtinFS embed.FS

// DefaultName is the profile used when none is configured.
const DefaultName = "rice-maize-chickpea"

// BuiltinNames lists the embedded profiles.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("profiles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Builtin returns an embedded profile by name.
func Builtin(name string) (*Profile, error) {
	payload, err := builtinFS.ReadFile(path.Join("profiles", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("unknown built-in profile %q (available: %s)", name, strings.Join(BuiltinNames(), ", "))
	}
	p, err := Parse(payload)
	if err != nil {
		return nil, fmt.Errorf("built-in profile %q: %w", name, err)
	}
	return p, nil
}

// Resolve treats ref as a built-in name first and a file path otherwise.
// An empty ref selects DefaultName.
func Resolve(ref string) (*Profile, error) {
	if ref == "" {
		ref = DefaultName
	}
	for _, name := range BuiltinNames() {
		if name == ref {
			return Builtin(name)
		}
	}
	return Load(ref)
}
