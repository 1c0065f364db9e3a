package iox

import (
	"io"
	"os"
)

type Input interface {
	io.Reader
	Path() string
	Info() (os.FileInfo, error)
	Open() error
	Close() error
}
