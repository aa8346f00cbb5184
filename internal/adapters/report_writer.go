package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"galaxy-audit/internal/ports"
	"galaxy-audit/internal/types"
)

// ReportWriterAdapter persists dependency reports as JSON files.
type ReportWriterAdapter struct{}

func NewReportWriterAdapter() ReportWriterAdapter {
	return ReportWriterAdapter{}
}

func (a ReportWriterAdapter) WriteDependencyReport(path string, entries []types.FileDefinedDependencies) error {
	ordered := append([]types.FileDefinedDependencies(nil), entries...)
	for i := range ordered {
		dependencies := append([]types.Dependency(nil), ordered[i].Dependencies...)
		sort.Slice(dependencies, func(x, y int) bool {
			return dependencies[x].Key() < dependencies[y].Key()
		})
		ordered[i].Dependencies = dependencies
	}

	data, err := json.MarshalIndent(ordered, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode dependency report").
			WithCause(err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create report directory").
				WithCause(err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write dependency report").
			WithCause(err)
	}
	return nil
}

var _ ports.ReportWriterPort = ReportWriterAdapter{}
