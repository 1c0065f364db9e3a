package component

import (
	"context"
	"github.com/mocukie/imgcmp/internal/coder"
	"github.com/mocukie/imgcmp/internal/iox"
	"github.com/mocukie/imgcmp/pkg/imagex"
	"sync"
)

type Job struct {
	Name   string
	Ref    iox.Input
	Cand   iox.Input
	Result Result
	done   chan struct{}
}

func newJob(name string) *Job {
	return &Job{Name: name, done: make(chan struct{})}
}

// Done is closed once Result is set.
func (job *Job) Done() <-chan struct{} {
	return job.done
}

func (job *Job) finished() bool {
	select {
	case <-job.done:
		return true
	default:
		return false
	}
}

func (job *Job) finish(r Result) {
	job.Result = r
	close(job.done)
}

func (job *Job) do(dec coder.Decoder) Result {
	r := Result{Name: job.Name}

	ref, err := dec.Decode(job.Ref)
	if err != nil {
		r.Status, r.Err = DecodeError, err
		return r
	}
	cand, err := dec.Decode(job.Cand)
	if err != nil {
		r.Status, r.Err = DecodeError, err
		return r
	}

	r.RefShape, r.CandShape = ref.Shape(), cand.Shape()
	if r.RefShape != r.CandShape {
		r.Status = ShapeMismatch
		return r
	}

	diff, err := imagex.AbsDiff(ref, cand)
	if err != nil {
		r.Status, r.Err = ShapeMismatch, err
		return r
	}

	nonZero := 0
	for _, plane := range diff.Split() {
		nonZero += imagex.CountNonZero(plane)
	}
	if nonZero == 0 {
		r.Status = Equal
		return r
	}

	r.Status = Different
	r.Score = imagex.Score(diff)
	return r
}

type Comparer struct {
	maxGo   int
	decoder coder.Decoder
}

func NewComparer(config *Config) *Comparer {
	maxGo := config.MaxGo
	if maxGo <= 0 {
		maxGo = 1
	}
	dec := config.Decoder
	if dec == nil {
		dec = &coder.Raster{}
	}
	return &Comparer{
		maxGo:   maxGo,
		decoder: dec,
	}
}

// Start compares every unfinished job and returns when the workers are gone. Jobs
// still queued when ctx is cancelled stay unfinished.
func (cp *Comparer) Start(ctx context.Context, jobs []*Job) {
	queue := make(chan *Job, len(jobs))
	for _, job := range jobs {
		if !job.finished() {
			queue <- job
		}
	}
	close(queue)

	var wg = new(sync.WaitGroup)
	for i := 0; i < cp.maxGo; i++ {
		wg.Add(1)
		go cp.worker(ctx, wg, queue)
	}
	wg.Wait()
}

func (cp *Comparer) worker(ctx context.Context, wg *sync.WaitGroup, queue <-chan *Job) {
	defer wg.Done()
	for job := range queue {
		if ctx.Err() != nil {
			return
		}
		job.finish(job.do(cp.decoder))
	}
}
