package ui

// StepReporter maps scaffolding step events onto one progress bar: the
// run announces its step count, each finished step advances the bar.
type StepReporter struct {
	progress Progress
	bar      ProgressBar
	total    int
}

// NewStepReporter creates a StepReporter backed by the given Progress.
func NewStepReporter(p Progress) *StepReporter {
	return &StepReporter{progress: p}
}

// RunStarted records the total step count; the bar is created on the
// first step so its title is a real step name.
func (r *StepReporter) RunStarted(totalSteps int) {
	r.total = totalSteps
}

// StepStarted creates or retitles the bar for the named step.
func (r *StepReporter) StepStarted(name string) {
	if r.bar == nil {
		r.bar = r.progress.Start(name, r.total)
		return
	}
	r.bar.SetTitle(name)
}

// StepFinished advances the bar by one step.
func (r *StepReporter) StepFinished(name string) {
	if r.bar != nil {
		r.bar.Increment(1)
	}
}

// Close completes the bar. Safe to call more than once.
func (r *StepReporter) Close() {
	if r.bar != nil {
		r.bar.Done()
		r.bar = nil
	}
}
