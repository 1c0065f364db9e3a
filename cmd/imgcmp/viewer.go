package main

import (
	"github.com/pkg/errors"
	"os/exec"
	"runtime"
)

func viewerCommand(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

// openViewer starts the platform image viewer for both files without waiting for it.
func openViewer(refPath, candPath string) error {
	for _, p := range []string{refPath, candPath} {
		cmd := viewerCommand(p)
		if err := cmd.Start(); err != nil {
			return errors.Wrapf(err, "can not run %s", cmd.Path)
		}
		go cmd.Wait()
	}
	return nil
}
