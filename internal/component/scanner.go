package component

import (
	"github.com/karrick/godirwalk"
	"github.com/mocukie/imgcmp/internal/iox"
	"github.com/pkg/errors"
	"path/filepath"
	"sort"
)

// Plan holds one job per reference file, in name order, and the candidate files that
// have no reference.
type Plan struct {
	Jobs  []*Job
	Extra []string
}

type Scanner struct {
	config *Config
}

func NewScanner(config *Config) *Scanner {
	return &Scanner{config: config}
}

func (sc *Scanner) Scan() (*Plan, error) {
	conf := sc.config

	refNames, err := sc.list(conf.Ref)
	if err != nil {
		return nil, errors.WithMessage(err, "can not list reference directory")
	}
	candNames, err := sc.list(conf.Cand)
	if err != nil {
		return nil, errors.WithMessage(err, "can not list candidate directory")
	}

	var (
		plan = new(Plan)
		refs = make(map[string]struct{}, len(refNames))
		cand = make(map[string]struct{}, len(candNames))
	)
	for _, name := range candNames {
		cand[name] = struct{}{}
	}

	for _, name := range refNames {
		refs[name] = struct{}{}
		job := newJob(name)
		if _, ok := cand[name]; ok {
			job.Ref = iox.NewFileInput(filepath.Join(conf.Ref, name))
			job.Cand = iox.NewFileInput(filepath.Join(conf.Cand, name))
		} else {
			job.finish(Result{Name: name, Status: Missing})
		}
		plan.Jobs = append(plan.Jobs, job)
	}

	for _, name := range candNames {
		if _, ok := refs[name]; !ok {
			plan.Extra = append(plan.Extra, name)
		}
	}
	return plan, nil
}

func (sc *Scanner) list(dir string) ([]string, error) {
	dirents, err := godirwalk.ReadDirents(dir, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "read directory <%s> failed", dir)
	}

	names := make([]string, 0, len(dirents))
	for _, de := range dirents {
		// fifos and devices would block on open
		if !de.IsRegular() && !de.IsSymlink() {
			continue
		}
		if sc.config.Match != nil && !sc.config.Match(de.Name()) {
			continue
		}
		names = append(names, de.Name())
	}
	sort.Strings(names)
	return names, nil
}
