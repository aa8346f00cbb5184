package adapters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"galaxy-audit/internal/ports"
	"galaxy-audit/internal/types"
)

// ManifestAdapter parses the two recognized declaration file formats
// into declared (name, requirement) pairs.
type ManifestAdapter struct{}

func NewManifestAdapter() ManifestAdapter {
	return ManifestAdapter{}
}

// manifestDocument is the subset of MANIFEST.json this tool reads.
type manifestDocument struct {
	CollectionInfo struct {
		Dependencies map[string]string `json:"dependencies"`
	} `json:"collection_info"`
}

// galaxyDocument is the subset of galaxy.yml this tool reads.
type galaxyDocument struct {
	Dependencies map[string]string `yaml:"dependencies"`
}

func (a ManifestAdapter) Dependencies(file types.DeclarationFile) (map[string]string, error) {
	data, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("declaration file not readable: %s", file.Path)).
			WithCause(err)
	}
	switch file.Kind {
	case types.DeclarationKindManifestJSON:
		return parseManifestJSON(file.Path, data)
	case types.DeclarationKindGalaxyYML:
		return parseGalaxyYML(file.Path, data)
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported declaration kind: %s", file.Kind))
	}
}

func parseManifestJSON(path string, data []byte) (map[string]string, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	var document manifestDocument
	if err := decoder.Decode(&document); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse manifest json: %s", path)).
			WithCause(err)
	}
	if document.CollectionInfo.Dependencies == nil {
		return map[string]string{}, nil
	}
	return document.CollectionInfo.Dependencies, nil
}

func parseGalaxyYML(path string, data []byte) (map[string]string, error) {
	var document galaxyDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse galaxy yaml: %s", path)).
			WithCause(err)
	}
	if document.Dependencies == nil {
		return map[string]string{}, nil
	}
	return document.Dependencies, nil
}

var _ ports.DeclarationParserPort = ManifestAdapter{}
