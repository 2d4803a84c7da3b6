package main

import (
	"io"
	"os"

	"github.com/vtrender/termframe/internal/xerr"
)

// resolveCommand turns the positional FILE argument into a shell command
// to run under the PTY: a path is executed directly via sh, "-" reads a
// script from stdin into a temp file first since the PTY's own stdin is
// reserved for the child, not the recorder's.
func resolveCommand(file string) (name string, args []string, cleanup func(), err error) {
	if file != "-" {
		if _, statErr := os.Stat(file); statErr != nil {
			return "", nil, nil, xerr.IO("stat "+file, statErr)
		}
		return "sh", []string{file}, func() {}, nil
	}

	data, readErr := io.ReadAll(os.Stdin)
	if readErr != nil {
		return "", nil, nil, xerr.IO("read stdin", readErr)
	}

	tmp, createErr := os.CreateTemp("", "termframe-script-*")
	if createErr != nil {
		return "", nil, nil, xerr.IO("create temp script", createErr)
	}
	if _, writeErr := tmp.Write(data); writeErr != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, nil, xerr.IO("write temp script", writeErr)
	}
	tmp.Close()
	if chmodErr := os.Chmod(tmp.Name(), 0o755); chmodErr != nil {
		os.Remove(tmp.Name())
		return "", nil, nil, xerr.IO("chmod temp script", chmodErr)
	}

	path := tmp.Name()
	return "sh", []string{path}, func() { os.Remove(path) }, nil
}
