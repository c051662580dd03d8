package browser

import "os/exec"

func NewWithCommand(goos string, command func(name string, args ...string) *exec.Cmd) *System {
	return &System{goos: goos, command: command}
}
