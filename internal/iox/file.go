package iox

import (
	"github.com/pkg/errors"
	"os"
)

type FileInput struct {
	*os.File
	path string
	info os.FileInfo
}

func NewFileInput(path string) *FileInput {
	return &FileInput{path: path}
}

func (fi *FileInput) Path() string {
	return fi.path
}

func (fi *FileInput) Open() error {
	var err error
	fi.File, err = os.Open(fi.path)
	return errors.WithStack(err)
}

// Info follows symlinks and caches the result.
func (fi *FileInput) Info() (os.FileInfo, error) {
	var err error
	if fi.info == nil {
		fi.info, err = os.Stat(fi.path)
	}
	return fi.info, errors.WithStack(err)
}

// Close is a no-op on an input that was never opened.
func (fi *FileInput) Close() error {
	if fi.File == nil {
		return nil
	}
	err := fi.File.Close()
	fi.File = nil
	return errors.WithStack(err)
}
