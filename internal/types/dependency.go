package types

import "fmt"

// DeclarationFile is a dependency declaration file discovered on disk.
type DeclarationFile struct {
	Kind DeclarationKind
	Path string
}

// Dependency is a collection dependency with its resolved version.
// Version is nil when no usable concrete version could be determined;
// downstream consumers report such entries rather than failing on them.
type Dependency struct {
	Name    string  `json:"name"`
	Version *string `json:"version"`
}

// Key returns a stable identity for deduplication by (name, version).
func (d Dependency) Key() string {
	if d.Version == nil {
		return d.Name
	}
	return fmt.Sprintf("%s@%s", d.Name, *d.Version)
}

// GlobalVersions maps collection names to locally installed version
// strings. Built once per run from the inventory provider and read-only
// afterward.
type GlobalVersions map[string]string

// FileDefinedDependencies is the result of resolving one declaration file.
type FileDefinedDependencies struct {
	Path             string       `json:"path"`
	RegistryHostName string       `json:"registry_host_name"`
	Dependencies     []Dependency `json:"dependencies"`
}
