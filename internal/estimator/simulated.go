package estimator

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/theirongolddev/kburn/internal/model"
)

// Simulated estimates nutrition from filename keywords. It never looks at pixels.
type Simulated struct {
	rng *rand.Rand
}

// NewSimulated returns a simulated estimator. A nil rng seeds from the clock.
func NewSimulated(rng *rand.Rand) *Simulated {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Simulated{rng: rng}
}

// Name implements Estimator.
func (s *Simulated) Name() string { return model.SourceSimulated }

// Estimate implements Estimator. Unrecognized inputs get a random catalog food.
func (s *Simulated) Estimate(ctx context.Context, req Request) (model.Estimate, error) {
	if err := ctx.Err(); err != nil {
		return model.Estimate{}, err
	}
	if req.empty() {
		return model.Estimate{}, ErrEmptyRequest
	}

	if f, ok := match(req); ok {
		return f.estimate(model.SourceSimulated), nil
	}
	return catalog[s.rng.IntN(len(catalog))].estimate(model.SourceSimulated), nil
}
