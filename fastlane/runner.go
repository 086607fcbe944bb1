// Package fastlane runs the store publishing tool and decodes its JSON protocol.
//
// Every action is invoked with its arguments joined into a single token.
// Standard output and input are inherited, standard error carries the result document.
package fastlane

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bitrise-io/go-utils/errorutil"
	"github.com/bitrise-io/go-utils/v2/command"
)

// Action is an executable of the publishing tool.
type Action string

// Actions
const (
	Supply  Action = "app_supply"
	Produce Action = "app_produce"
	Deliver Action = "app_deliver"
)

// Logger ...
type Logger interface {
	Debugf(format string, v ...interface{})
}

// Runner ...
type Runner struct {
	factory command.Factory
	dir     string
	stdout  io.Writer
	stdin   io.Reader
	logger  Logger
}

// NewRunner returns a Runner looking up the actions in dir, or on the PATH if dir is empty.
func NewRunner(factory command.Factory, dir string, logger Logger) Runner {
	return Runner{
		factory: factory,
		dir:     dir,
		stdout:  os.Stdout,
		stdin:   os.Stdin,
		logger:  logger,
	}
}

// Run invokes action and blocks until it exits.
// A non zero exit code is not an error on its own: the result document tells the outcome.
func (r Runner) Run(action Action, args ...string) (Result, error) {
	var stderr bytes.Buffer
	cmd := r.factory.Create(r.actionPath(action), []string{strings.Join(args, " ")}, &command.Opts{
		Stdout: r.stdout,
		Stdin:  r.stdin,
		Stderr: &stderr,
	})

	r.logger.Debugf("$ %s", cmd.PrintableCommandArgs())

	if err := cmd.Run(); err != nil && !isExitStatusError(err) {
		return Result{}, fmt.Errorf("failed to run %s: %w", action, err)
	}

	return ParseResult(stderr.Bytes())
}

func (r Runner) actionPath(action Action) string {
	if r.dir == "" {
		return string(action)
	}
	return filepath.Join(r.dir, string(action))
}

func isExitStatusError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr) || errorutil.IsExitStatusError(err)
}
