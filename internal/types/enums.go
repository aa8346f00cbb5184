package types

// DeclarationKind identifies a recognized dependency declaration file.
type DeclarationKind string

const (
	DeclarationKindManifestJSON DeclarationKind = "manifest-json"
	DeclarationKindGalaxyYML    DeclarationKind = "galaxy-yml"
)

// FileName returns the file name probed for this declaration kind.
func (k DeclarationKind) FileName() string {
	switch k {
	case DeclarationKindManifestJSON:
		return "MANIFEST.json"
	case DeclarationKindGalaxyYML:
		return "galaxy.yml"
	default:
		return ""
	}
}

// DeclarationKinds lists the recognized kinds in probe order.
func DeclarationKinds() []DeclarationKind {
	return []DeclarationKind{
		DeclarationKindManifestJSON,
		DeclarationKindGalaxyYML,
	}
}
