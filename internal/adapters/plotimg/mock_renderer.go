package plotimg

import (
	"context"
	"io"

	"github.com/Scrubzie/route-visualiser/internal/domain"
)

// MockRenderer records the scenes it is asked to render and writes a fixed
// payload, for handler and CLI tests that should not depend on gonum/plot.
type MockRenderer struct {
	Payload []byte
	Err     error

	Scenes []*domain.Scene
}

func (m *MockRenderer) Render(ctx context.Context, scene *domain.Scene, w io.Writer) error {
	if m.Err != nil {
		return m.Err
	}

	m.Scenes = append(m.Scenes, scene)
	if len(m.Payload) > 0 {
		if _, err := w.Write(m.Payload); err != nil {
			return err
		}
	}

	return nil
}
