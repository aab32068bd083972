package ports

import (
	"context"
	"io"

	"github.com/Scrubzie/route-visualiser/internal/domain"
)

// Contract for turning a projected scene into an encoded figure.
type SceneRenderer interface {
	// Render encodes the scene and writes the figure bytes to w.
	Render(ctx context.Context, scene *domain.Scene, w io.Writer) error
}
