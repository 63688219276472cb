package items

import (
	"context"
	"fmt"

	"github.com/arthur-debert/pioneer/pkg/types"
)

// EnvVar exports an environment variable from the generated profile.
type EnvVar struct {
	Key   string
	Value string
}

func NewEnvVar(key, value string) *EnvVar {
	return &EnvVar{Key: key, Value: value}
}

func (e *EnvVar) Kind() Kind { return KindEnv }

func (e *EnvVar) String() string { return "env " + e.Key }

func (e *EnvVar) Validate(context.Context) error {
	log.Debug().Str("env", e.Key).Msg("Checking env var")
	return checkIdentifier(KindEnv, e.Key)
}

func (e *EnvVar) Apply(context.Context) (types.Installed, error) {
	return types.NewRcLine(fmt.Sprintf(`export %s="%s"`, e.Key, e.Value)), nil
}
