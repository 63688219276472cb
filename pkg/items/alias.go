package items

import (
	"context"
	"fmt"
	"strings"

	"github.com/arthur-debert/pioneer/pkg/types"
)

// Alias defines a shell alias in the generated profile.
type Alias struct {
	Name    string
	Command string
}

func NewAlias(name, command string) *Alias {
	return &Alias{Name: name, Command: command}
}

func (a *Alias) Kind() Kind { return KindAlias }

func (a *Alias) String() string { return "alias " + a.Name }

func (a *Alias) Validate(context.Context) error {
	log.Debug().Str("alias", a.Name).Msg("Checking alias")
	return checkIdentifier(KindAlias, a.Name)
}

// Apply renders the alias as an ANSI-C quoted string so the command may hold
// single quotes.
func (a *Alias) Apply(context.Context) (types.Installed, error) {
	escaped := strings.ReplaceAll(a.Command, "'", `\'`)
	return types.NewRcLine(fmt.Sprintf("alias %s=$'%s'", a.Name, escaped)), nil
}
