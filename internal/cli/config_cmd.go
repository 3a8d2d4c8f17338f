package cli

import (
	"fmt"

	"github.com/olivier-w/eqviz/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the settings eqviz would run with after merging defaults, the config
file, EQVIZ_* environment variables and flags. The output is a valid
eqviz.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return errors.WrapWithCode(err, errors.ErrConfig, "Can't encode config", "")
			}
			out := cmd.OutOrStdout()
			if cfg.Path != "" {
				fmt.Fprintf(out, "# loaded from %s\n", cfg.Path)
			} else {
				fmt.Fprintln(out, "# no config file found, showing defaults")
			}
			_, err = out.Write(data)
			return err
		},
	}
}
