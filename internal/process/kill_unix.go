//go:build !windows

// Package process terminates the headless browser together with its helper
// processes.
package process

import (
	"errors"
	"syscall"
)

// KillTree sends SIGKILL to the process group led by pid. A group that is
// already gone is not an error.
func KillTree(pid int) error {
	if pid <= 0 {
		return ErrInvalidPID
	}
	err := syscall.Kill(-pid, syscall.SIGKILL)
	if errors.Is(err, syscall.ESRCH) {
		return nil
	}
	return err
}
