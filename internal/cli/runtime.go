package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rshade/eorx/internal/config"
)

// runtime is the per-invocation state resolved by the root command.
type runtime struct {
	cfg        *config.Config
	projectDir string
}

type runtimeKey struct{}

func withRuntime(ctx context.Context, rt *runtime) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, runtimeKey{}, rt)
}

// runtimeFrom returns the resolved runtime, or one built from the global
// config when the command runs outside the root (tests).
func runtimeFrom(cmd *cobra.Command) *runtime {
	if ctx := cmd.Context(); ctx != nil {
		if rt, ok := ctx.Value(runtimeKey{}).(*runtime); ok && rt != nil {
			return rt
		}
	}
	return &runtime{cfg: config.New()}
}
