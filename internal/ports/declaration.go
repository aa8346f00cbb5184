package ports

import "galaxy-audit/internal/types"

// DeclarationLocatorPort discovers dependency declaration files by
// walking up from a starting directory.
type DeclarationLocatorPort interface {
	// Locate returns all declaration files found at the nearest
	// directory level that contains any; empty when none exists up to
	// the filesystem root. The start directory must be absolute.
	Locate(startDirectory string) ([]types.DeclarationFile, error)
}

// DeclarationParserPort extracts declared dependencies from a located
// declaration file.
type DeclarationParserPort interface {
	// Dependencies returns the declared (name, requirement string)
	// pairs. A file without a dependencies section yields an empty map.
	Dependencies(file types.DeclarationFile) (map[string]string, error)
}

// ReportWriterPort persists dependency reports for later inspection.
type ReportWriterPort interface {
	WriteDependencyReport(path string, entries []types.FileDefinedDependencies) error
}
