package component

import (
	"github.com/mocukie/imgcmp/internal/coder"
	"path"
	"path/filepath"
	"strings"
)

type PathMatcher func(pathname string) bool

// Viewer shows a reference image next to its candidate.
type Viewer func(refPath, candPath string) error

type Config struct {
	Ref       string
	Cand      string
	Match     PathMatcher
	MaxGo     int
	FailFast  bool
	Precision int
	LogPath   string
	Viewer    Viewer
	Decoder   coder.Decoder
}

func NewGlobMatcher(pattern string) (PathMatcher, error) {
	patterns := strings.Split(pattern, "|")
	for _, s := range patterns {
		_, err := path.Match(s, "foobar")
		if err != nil {
			return nil, err
		}
	}

	return func(pathname string) bool {
		var name = filepath.Base(pathname)
		var ok = false
		for _, s := range patterns {
			if ok, _ = path.Match(s, name); ok {
				break
			}
		}
		return ok
	}, nil
}
