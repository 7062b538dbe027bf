// pkg/platform/utils.go
package platform

import (
	"os/exec"
	"strings"
)

// lookPath returns the path of the first word of cmd on PATH, or ""
func lookPath(cmd string) string {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return ""
	}
	path, err := exec.LookPath(fields[0])
	if err != nil {
		return ""
	}
	return path
}
