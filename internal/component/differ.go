package component

import (
	"context"
	"io"
	"sync"
)

// Differ compares every reference image with the candidate of the same name.
type Differ struct {
	scanner  *Scanner
	comparer *Comparer
	monitor  *Monitor
}

func NewDiffer(config *Config, out io.Writer, logOut io.Writer) *Differ {
	return &Differ{
		scanner:  NewScanner(config),
		comparer: NewComparer(config),
		monitor:  NewMonitor(config, out, logOut),
	}
}

// Run returns an error only when a directory can not be listed; per file problems
// end up in the Summary.
func (d *Differ) Run(ctx context.Context) (Summary, error) {
	plan, err := d.scanner.Scan()
	if err != nil {
		return Summary{}, err
	}

	workCtx, stop := context.WithCancel(ctx)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		d.comparer.Start(workCtx, plan.Jobs)
	}()

	summary := d.monitor.Start(ctx, plan)
	stop()
	wg.Wait()
	return summary, nil
}
