//go:build windows

// Package process terminates the headless browser together with its helper
// processes.
package process

import (
	"os/exec"
	"strconv"
)

// KillTree force-kills pid and its children with taskkill /F /T.
func KillTree(pid int) error {
	if pid <= 0 {
		return ErrInvalidPID
	}
	// taskkill exits non-zero for a process that already exited.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- numeric pid
	return nil
}
