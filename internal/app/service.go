package app

import (
	"galaxy-audit/internal/adapters"
	"galaxy-audit/internal/ports"
)

// extensionName and registryHostName identify this module to the
// package-trust host it plugs into.
const extensionName = "ansible"
const registryHostName = "galaxy.ansible.com"

// Service implements the registry-extension surface for Ansible Galaxy
// collections.
type Service struct {
	Locator   ports.DeclarationLocatorPort
	Parser    ports.DeclarationParserPort
	Inventory ports.InventoryPort
	Registry  ports.RegistryPort
	Reports   ports.ReportWriterPort
}

// Options tune the default adapter wiring.
type Options struct {
	RegistryBaseURL    string
	HTTPTimeoutSeconds int
}

func NewService(opts Options) Service {
	return Service{
		Locator:   adapters.NewDeclarationFileAdapter(),
		Parser:    adapters.NewManifestAdapter(),
		Inventory: adapters.NewInventoryAdapter(),
		Registry:  adapters.NewGalaxyRegistryAdapter(opts.RegistryBaseURL, opts.HTTPTimeoutSeconds),
		Reports:   adapters.NewReportWriterAdapter(),
	}
}

// Name returns the extension name.
func (s Service) Name() string {
	return extensionName
}

// Registries returns the registry hosts this extension covers.
func (s Service) Registries() []string {
	return []string{registryHostName}
}
