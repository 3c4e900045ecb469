package blast

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// findExecutable resolves the path to a BLAST+ tool.
//
// With a dir, the tool must be an executable file directly inside it.
// Without one, the tool is searched for in $PATH.
func findExecutable(tool, dir string) (string, error) {
	if dir != "" {
		exe := filepath.Join(dir, tool)
		if err := isExecutable(exe); err != nil {
			return "", fmt.Errorf("%s is not executable (%s): %w", tool, exe, err)
		}
		return exe, nil
	}

	exe, err := exec.LookPath(tool)
	if err != nil {
		return "", fmt.Errorf("%s is not executable: %w", tool, err)
	}

	return exe, nil
}

// isExecutable errors unless path is a regular file with an execute bit.
func isExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}
	if info.Mode().Perm()&0111 == 0 {
		return fmt.Errorf("%s is not executable", path)
	}

	return nil
}
