package ports

import (
	"context"

	"galaxy-audit/internal/types"
)

// InventoryPort reports locally installed collections. The inventory is
// best-effort signal: entries are consumed permissively and never treated
// as authoritative.
type InventoryPort interface {
	ListInstalled(ctx context.Context) (types.GlobalVersions, error)
}
