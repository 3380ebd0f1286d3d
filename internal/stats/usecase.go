package stats

import (
	"context"

	"github.com/fekuna/omnipos-marketplace-service/internal/stats/dto"
)

// MaxSteps bounds the frames rendered per stat in one call.
const MaxSteps = 600

type UseCase interface {
	ListStats(ctx context.Context) ([]*dto.StatView, error)
	// Frames renders steps+1 evenly spaced frames per stat, from progress 0 to 1.
	Frames(ctx context.Context, steps int) ([]*dto.StatFrames, error)
}
