package workflow

// Pipeline is the ordered step table of one guided form. It is built
// once at startup and read-only afterwards; the order of its steps is
// the sole source of truth for what comes next.
type Pipeline struct {
	steps []StepDef
}

func NewPipeline(steps ...StepDef) *Pipeline {
	return &Pipeline{steps: steps}
}

// StepAt returns the step at index. ok is false past the last step,
// which signals a completed dialog.
func (p *Pipeline) StepAt(index int) (StepDef, bool) {
	if index < 0 || index >= len(p.steps) {
		return StepDef{}, false
	}
	return p.steps[index], true
}

func (p *Pipeline) TotalSteps() int {
	return len(p.steps)
}

// Fields lists the record fields in step order.
func (p *Pipeline) Fields() []string {
	out := make([]string, len(p.steps))
	for i, s := range p.steps {
		out[i] = s.Field
	}
	return out
}
