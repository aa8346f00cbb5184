package adapters

import (
	"context"
	"encoding/json"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"galaxy-audit/internal/ports"
	"galaxy-audit/internal/shared"
	"galaxy-audit/internal/types"
)

// InventoryAdapter lists installed collections by invoking
// `ansible-galaxy collection list --format json`.
type InventoryAdapter struct{}

func NewInventoryAdapter() InventoryAdapter {
	return InventoryAdapter{}
}

func (a InventoryAdapter) ListInstalled(ctx context.Context) (types.GlobalVersions, error) {
	cmd := exec.CommandContext(ctx, "ansible-galaxy", "collection", "list", "--format", "json")
	output, err := cmd.Output()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("ansible-galaxy collection list failed").
			WithCause(shared.CommandError(output, err))
	}
	return DecodeInventory(output)
}

// inventoryEntry is one collection record in the listing output. The
// output shape is {collectionsDir: {collectionName: {"version": "..."}}}.
type inventoryEntry struct {
	Version string `json:"version"`
}

// DecodeInventory parses the listing output into a version map. Entries
// without a version string are skipped; a non-object top level yields an
// empty inventory.
func DecodeInventory(output []byte) (types.GlobalVersions, error) {
	versions := types.GlobalVersions{}

	var listing map[string]json.RawMessage
	if err := json.Unmarshal(output, &listing); err != nil {
		var probe any
		if json.Unmarshal(output, &probe) == nil {
			// Valid JSON that is not an object: treat as no collections.
			return versions, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse ansible-galaxy collection listing").
			WithCause(err)
	}

	for directory, raw := range listing {
		var collections map[string]json.RawMessage
		if err := json.Unmarshal(raw, &collections); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse collections for directory: " + directory).
				WithCause(err)
		}
		for name, rawEntry := range collections {
			var entry inventoryEntry
			if err := json.Unmarshal(rawEntry, &entry); err != nil {
				log.Debug().Str("collection", name).Msg("inventory entry is malformed, skipping")
				continue
			}
			if entry.Version == "" {
				log.Debug().Str("collection", name).Msg("inventory entry has no version, skipping")
				continue
			}
			versions[name] = entry.Version
		}
	}
	return versions, nil
}

var _ ports.InventoryPort = InventoryAdapter{}
