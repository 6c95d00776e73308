package pipeline

import (
	"context"

	"github.com/wdm0006/shelter/pkg/roster"
)

// Stage transforms or filters a canonical table. Stages return a new slice
// and leave their input untouched.
type Stage interface {
	Name() string
	Apply(ctx context.Context, records []roster.CanonicalRecord) ([]roster.CanonicalRecord, error)
}

// Pipeline composes a sequence of Stages.
type Pipeline struct {
	stages []Stage
}

func NewPipeline() *Pipeline { return &Pipeline{} }

func (p *Pipeline) Add(s Stage) *Pipeline {
	p.stages = append(p.stages, s)
	return p
}

// Stages returns the stage names in run order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}

func (p *Pipeline) Run(ctx context.Context, records []roster.CanonicalRecord) ([]roster.CanonicalRecord, error) {
	var err error
	cur := records
	for _, s := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cur, err = s.Apply(ctx, cur)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
