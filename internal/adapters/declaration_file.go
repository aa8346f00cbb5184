package adapters

import (
	"context"
	"os"
	"path/filepath"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"galaxy-audit/internal/ports"
	"galaxy-audit/internal/types"
)

// DeclarationFileAdapter finds the nearest enclosing directory that
// contains a recognized dependency declaration file, the way build tools
// resolve a project root.
type DeclarationFileAdapter struct{}

func NewDeclarationFileAdapter() DeclarationFileAdapter {
	return DeclarationFileAdapter{}
}

func (a DeclarationFileAdapter) Locate(startDirectory string) ([]types.DeclarationFile, error) {
	assert.NotEmpty(context.Background(), startDirectory, "start directory must be set")
	if !filepath.IsAbs(startDirectory) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("start directory must be absolute")
	}

	directory := filepath.Clean(startDirectory)
	for {
		var found []types.DeclarationFile
		for _, kind := range types.DeclarationKinds() {
			candidate := filepath.Join(directory, kind.FileName())
			info, err := os.Stat(candidate)
			if err != nil || info.IsDir() {
				continue
			}
			found = append(found, types.DeclarationFile{Kind: kind, Path: candidate})
		}
		if len(found) > 0 {
			return found, nil
		}

		parent := filepath.Dir(directory)
		if parent == directory {
			return nil, nil
		}
		directory = parent
	}
}

// SelectPreferred applies the declaration file selection policy: the
// first galaxy.yml candidate when any exists, otherwise the first
// candidate of any kind. The YAML manifest is the human-authored source
// of truth; MANIFEST.json is a generated artifact that may be stale.
func SelectPreferred(files []types.DeclarationFile) (types.DeclarationFile, bool) {
	for _, file := range files {
		if file.Kind == types.DeclarationKindGalaxyYML {
			log.Debug().Str("path", file.Path).Msg("selected galaxy.yml declaration file")
			return file, true
		}
	}
	if len(files) > 0 {
		return files[0], true
	}
	return types.DeclarationFile{}, false
}

var _ ports.DeclarationLocatorPort = DeclarationFileAdapter{}
