package component

import (
	"github.com/mocukie/imgcmp/pkg/imagex"
)

type Status int

const (
	Equal Status = iota
	Different
	Missing
	ShapeMismatch
	DecodeError
)

var statusNames = [...]string{
	Equal:         "equal",
	Different:     "different",
	Missing:       "missing",
	ShapeMismatch: "shape-mismatch",
	DecodeError:   "decode-error",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// Result is the outcome of comparing one reference file. Score is set for Different,
// the shapes once both images decoded, Err for DecodeError.
type Result struct {
	Name      string
	Status    Status
	Score     float64
	RefShape  imagex.Shape
	CandShape imagex.Shape
	Err       error
}

// Summary accumulates the results of a run in reporting order.
type Summary struct {
	Compared int
	Errors   int
	Warnings int
	Total    float64
	Aborted  bool
}

func (s Summary) Failed() bool {
	return s.Errors > 0 || s.Aborted
}
