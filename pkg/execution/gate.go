package execution

import (
	"context"
	"os"
	"os/exec"

	"github.com/arthur-debert/pioneer/pkg/logging"
	"github.com/rs/zerolog"
)

// Gate decides whether a config's install_while predicate holds.
type Gate interface {
	Allows(ctx context.Context, predicate string) bool
}

// ShellGate runs predicates with "<shell> -c <predicate>". A predicate holds
// when it exits zero; a shell that cannot be started counts as not holding.
type ShellGate struct {
	Shell  string
	logger zerolog.Logger
}

// NewShellGate creates a gate for shell, bash when empty.
func NewShellGate(shell string) *ShellGate {
	if shell == "" {
		shell = "bash"
	}
	return &ShellGate{
		Shell:  shell,
		logger: logging.GetLogger("execution.gate"),
	}
}

func (g *ShellGate) Allows(ctx context.Context, predicate string) bool {
	c := exec.CommandContext(ctx, g.Shell, "-c", predicate)
	c.Stdout = os.Stderr
	c.Stderr = os.Stderr

	if err := c.Run(); err != nil {
		g.logger.Debug().
			Err(err).
			Str("predicate", predicate).
			Msg("Predicate does not hold")
		return false
	}
	return true
}
