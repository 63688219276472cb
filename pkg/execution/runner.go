package execution

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/pioneer/pkg/errors"
	"github.com/arthur-debert/pioneer/pkg/logging"
	"github.com/rs/zerolog"
)

const (
	DefaultEscalator  = "sudo"
	DefaultDeniedCode = 100
)

// Command is one program invocation. Path is looked up on PATH unless it
// contains a slash. Env entries are KEY=VALUE pairs added to the process
// environment, and passed on explicitly when the command is escalated.
type Command struct {
	Path string
	Args []string
	Env  []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// Output is what a finished program produced.
type Output struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	Escalated bool
}

// Runner runs commands to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Output, error)
}

// Options configure an EscalatingRunner. Zero values take the defaults.
type Options struct {
	Escalator  string
	DeniedCode int
}

// EscalatingRunner runs commands, escalating once on the permission-denied code.
type EscalatingRunner struct {
	escalator  string
	deniedCode int
	logger     zerolog.Logger
}

// NewRunner creates a runner.
func NewRunner(opts Options) *EscalatingRunner {
	if opts.Escalator == "" {
		opts.Escalator = DefaultEscalator
	}
	if opts.DeniedCode == 0 {
		opts.DeniedCode = DefaultDeniedCode
	}
	return &EscalatingRunner{
		escalator:  opts.Escalator,
		deniedCode: opts.DeniedCode,
		logger:     logging.GetLogger("execution.runner"),
	}
}

// Run executes cmd and returns its output. A non-zero exit, after the
// escalation retry where it applies, is an error.
func (r *EscalatingRunner) Run(ctx context.Context, cmd Command) (*Output, error) {
	path, err := exec.LookPath(cmd.Path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrExternalTool, "program %s not found", cmd.Path).
			WithDetail("command", cmd.Path)
	}

	logging.LogCommand(r.logger, path, cmd.Args)
	out, err := r.spawn(ctx, path, cmd.Args, cmd.Env)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrExternalTool, "failed to run %s", cmd).
			WithDetail("command", cmd.String())
	}

	if out.ExitCode == r.deniedCode {
		r.logger.Info().
			Str("command", cmd.String()).
			Int("exit_code", out.ExitCode).
			Str("escalator", r.escalator).
			Msg("Permission denied, re-running escalated")

		out, err = r.escalate(ctx, path, cmd)
		if err != nil {
			return nil, err
		}
	}

	if out.ExitCode != 0 {
		r.logger.Error().
			Str("command", cmd.String()).
			Int("exit_code", out.ExitCode).
			Bool("escalated", out.Escalated).
			Str("stdout", out.Stdout).
			Str("stderr", out.Stderr).
			Msg("Command execution failed")

		return out, errors.Newf(errors.ErrExternalTool, "%s exited with code %d", cmd, out.ExitCode).
			WithDetails(map[string]interface{}{
				"command":   cmd.String(),
				"exit_code": out.ExitCode,
				"escalated": out.Escalated,
				"stdout":    out.Stdout,
				"stderr":    out.Stderr,
			})
	}

	r.logger.Debug().
		Str("command", cmd.String()).
		Bool("escalated", out.Escalated).
		Msg("Command executed successfully")
	return out, nil
}

func (r *EscalatingRunner) escalate(ctx context.Context, path string, cmd Command) (*Output, error) {
	escalator, err := exec.LookPath(r.escalator)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrExternalTool, "escalator %s not found", r.escalator).
			WithDetail("command", cmd.String())
	}

	// Escalators reset the environment, so declared variables are handed to
	// the program through env(1) on the far side.
	args := []string{"--"}
	if len(cmd.Env) > 0 {
		args = append(append(args, "env"), cmd.Env...)
	}
	args = append(append(args, path), cmd.Args...)
	logging.LogCommand(r.logger, escalator, args)
	out, err := r.spawn(ctx, escalator, args, cmd.Env)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrExternalTool, "failed to run %s escalated", cmd).
			WithDetail("command", cmd.String())
	}
	out.Escalated = true
	return out, nil
}

// spawn runs the program and waits. Exiting non-zero is reported through
// Output.ExitCode; the error is only set when the process could not run.
func (r *EscalatingRunner) spawn(ctx context.Context, path string, args, env []string) (*Output, error) {
	c := exec.CommandContext(ctx, path, args...)
	c.Env = append(os.Environ(), env...)

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	out := &Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if !stderrors.As(err, &exitErr) || exitErr.ExitCode() < 0 {
			return nil, err
		}
		out.ExitCode = exitErr.ExitCode()
	}
	return out, nil
}
