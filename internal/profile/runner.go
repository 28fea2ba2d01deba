package profile

import (
	"os"
	"os/exec"
)

// Runner abstracts the external palette tool invocation so tests can
// substitute it.
type Runner interface {
	// LookPath reports whether the named tool is available.
	LookPath(name string) (string, error)
	// Run executes the tool with args, blocking until it exits, with the
	// working directory set to dir.
	Run(name string, args []string, dir string) error
}

// ExecRunner runs the real process. With Verbose set, tool output goes
// to the terminal; otherwise it is discarded.
type ExecRunner struct {
	Verbose bool
}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *ExecRunner) Run(name string, args []string, dir string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	if r.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}
