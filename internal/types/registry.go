package types

// RegistryRelease is one published release of a collection as reported
// by the registry API.
type RegistryRelease struct {
	Version     string
	DownloadURL string
}

// RegistryPackageMetadata is the registry record returned for a single
// collection version.
type RegistryPackageMetadata struct {
	RegistryHostName string `json:"registry_host_name"`
	HumanURL         string `json:"human_url"`
	ArtifactURL      string `json:"artifact_url"`
	IsPrimary        bool   `json:"is_primary"`
	PackageVersion   string `json:"package_version"`
}
