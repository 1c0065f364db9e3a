package component

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"time"
)

const (
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorReset  = "\x1b[0m"
)

// Monitor reports finished jobs in plan order. Console lines carry ANSI colours, the
// writer decides whether they reach the terminal.
type Monitor struct {
	config    *Config
	out       io.Writer
	errLog    *log.Logger
	warnLog   *log.Logger
	infoLog   *log.Logger
	summary   Summary
	startTime time.Time
}

func NewMonitor(config *Config, out io.Writer, logOut io.Writer) *Monitor {
	if logOut == nil {
		logOut = ioutil.Discard
	}
	m := &Monitor{config: config, out: out}
	flag := log.LstdFlags | log.Lmicroseconds
	m.errLog = log.New(logOut, "[ERROR] ", flag)
	m.warnLog = log.New(logOut, "[WARN ] ", flag)
	m.infoLog = log.New(logOut, "[INFO ] ", flag)
	return m
}

// Start blocks until every job is reported, the first error in fail fast mode, or ctx
// is cancelled.
func (mo *Monitor) Start(ctx context.Context, plan *Plan) Summary {
	mo.summary = Summary{}
	mo.startTime = time.Now()
	mo.infoLog.Printf("[Monitor] <%s> vs <%s>, %d reference files\n", mo.config.Ref, mo.config.Cand, len(plan.Jobs))

Loop:
	for _, job := range plan.Jobs {
		select {
		case <-job.Done():
		case <-ctx.Done():
			mo.summary.Aborted = true
			break Loop
		}
		mo.processResult(job)
		if mo.config.FailFast && mo.summary.Errors > 0 {
			break Loop
		}
	}

	if !mo.summary.Aborted && !(mo.config.FailFast && mo.summary.Errors > 0) {
		for _, name := range plan.Extra {
			mo.reportWarn(fmt.Sprintf("warning. unexpected file %s", name), nil)
		}
	}

	mo.printSummary()
	mo.logCounter()
	return mo.summary
}

func (mo *Monitor) processResult(job *Job) {
	r := job.Result
	if r.Status != Missing && r.Status != DecodeError {
		mo.summary.Compared++
	}

	switch r.Status {
	case Equal:
	case Missing:
		mo.reportError(fmt.Sprintf("error. missing file %s", r.Name), nil)
	case ShapeMismatch:
		mo.reportError(fmt.Sprintf("error. images with different shapes %s %v %v", r.Name, r.RefShape, r.CandShape), r.Err)
	case DecodeError:
		mo.reportError(fmt.Sprintf("error. can not decode image %s: %v", r.Name, r.Err), r.Err)
	case Different:
		mo.summary.Total += r.Score
		mo.reportError(fmt.Sprintf("error. images aren't equal %s %s", r.Name, mo.formatScore(r.Score)), nil)
		mo.openViewer(job)
	}
}

func (mo *Monitor) openViewer(job *Job) {
	if mo.config.Viewer == nil || job.Ref == nil || job.Cand == nil {
		return
	}
	if err := mo.config.Viewer(job.Ref.Path(), job.Cand.Path()); err != nil {
		mo.reportWarn(fmt.Sprintf("warning. can not open viewer for %s: %v", job.Name, err), err)
	}
}

func (mo *Monitor) formatScore(score float64) string {
	return fmt.Sprintf("%.*f", mo.config.Precision, score)
}

func (mo *Monitor) reportError(line string, err error) {
	mo.summary.Errors++
	fmt.Fprintln(mo.out, colorRed+line+colorReset)
	if err != nil {
		mo.errLog.Printf("[Monitor] %s\n%+v\n", line, err)
	} else {
		mo.errLog.Printf("[Monitor] %s\n", line)
	}
}

func (mo *Monitor) reportWarn(line string, err error) {
	mo.summary.Warnings++
	fmt.Fprintln(mo.out, colorYellow+line+colorReset)
	if err != nil {
		mo.warnLog.Printf("[Monitor] %s\n%+v\n", line, err)
	} else {
		mo.warnLog.Printf("[Monitor] %s\n", line)
	}
}

func (mo *Monitor) printSummary() {
	s := mo.summary
	switch {
	case s.Aborted:
		fmt.Fprintf(mo.out, "aborted. errors: %d, total difference: %s\n", s.Errors, mo.formatScore(s.Total))
	case s.Errors == 0:
		fmt.Fprintln(mo.out, "complete.")
	default:
		fmt.Fprintf(mo.out, "complete. errors: %d, total difference: %s\n", s.Errors, mo.formatScore(s.Total))
	}
}

func (mo *Monitor) logCounter() {
	s := mo.summary
	mo.infoLog.Printf("compared: %d | error: %d | warn: %d | total: %s | aborted: %v | elapsed: %10v\n",
		s.Compared, s.Errors, s.Warnings, mo.formatScore(s.Total), s.Aborted, time.Since(mo.startTime))
}
