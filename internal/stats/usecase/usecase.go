package usecase

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-marketplace-service/internal/format"
	"github.com/fekuna/omnipos-marketplace-service/internal/logger"
	"github.com/fekuna/omnipos-marketplace-service/internal/stats"
	"github.com/fekuna/omnipos-marketplace-service/internal/stats/dto"
)

type statsUseCase struct {
	repo   stats.Repository
	fmt    *format.Formatter
	steps  int
	logger logger.ZapLogger
}

// NewStatsUseCase renders frames with f; defaultSteps is used when a caller asks for 0 steps.
func NewStatsUseCase(repo stats.Repository, f *format.Formatter, defaultSteps int, log logger.ZapLogger) stats.UseCase {
	return &statsUseCase{
		repo:   repo,
		fmt:    f,
		steps:  defaultSteps,
		logger: log,
	}
}

func (uc *statsUseCase) ListStats(ctx context.Context) ([]*dto.StatView, error) {
	all, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.StatView, 0, len(all))
	for _, s := range all {
		v := &dto.StatView{Label: s.Label, Value: s.Value, Display: s.Value}
		m, err := format.ParseStat(s.Value)
		if err != nil {
			uc.logger.Warn("stat is not a magnitude", zap.String("label", s.Label), zap.Error(err))
			out = append(out, v)
			continue
		}
		v.Animated = true
		v.Target = m.Target()
		v.Exact = m.Value()
		v.Suffix = m.Suffix
		v.Plus = m.Plus
		v.Fractional = m.Fractional()
		v.Display = uc.fmt.Frame(m, 1)
		out = append(out, v)
	}
	return out, nil
}

func (uc *statsUseCase) Frames(ctx context.Context, steps int) ([]*dto.StatFrames, error) {
	if steps == 0 {
		steps = uc.steps
	}
	if steps < 1 || steps > stats.MaxSteps {
		return nil, errors.Wrapf(format.ErrInvalidInput, "steps %d outside [1,%d]", steps, stats.MaxSteps)
	}

	all, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.StatFrames, 0, len(all))
	for _, s := range all {
		frames := make([]string, steps+1)
		for i := range frames {
			frames[i] = uc.fmt.StatFrame(s.Value, float64(i)/float64(steps))
		}
		out = append(out, &dto.StatFrames{Label: s.Label, Frames: frames})
	}
	uc.logger.Debug("rendered stat frames", zap.Int("stats", len(out)), zap.Int("steps", steps))
	return out, nil
}
