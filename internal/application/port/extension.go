package port

import (
	"context"

	"github.com/filein/sidedock/internal/domain/entity"
)

// ExtensionCatalog enumerates installed extensions. How extensions are
// discovered is up to the implementation.
type ExtensionCatalog interface {
	List(ctx context.Context) ([]entity.ExtensionDescriptor, error)
}
