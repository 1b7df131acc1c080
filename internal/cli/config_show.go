package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after file, project and environment layering.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Example: `  eorx config show
  EORX_MODE=lenient eorx config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := runtimeFrom(cmd)

			data, err := yaml.Marshal(rt.cfg)
			if err != nil {
				return fmt.Errorf("marshalling config: %w", err)
			}

			out := cmd.OutOrStdout()
			if _, err = fmt.Fprintf(out, "# source: %s\n", rt.cfg.ConfigPath()); err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
}
