package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/olivier-w/eqviz/internal/config"
	"github.com/olivier-w/eqviz/internal/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// globalOptions is shared by the root command and its subcommands.
type globalOptions struct {
	v          *viper.Viper
	configFile string
}

func (o *globalOptions) load() (*config.Config, error) {
	return config.Load(o.v, o.configFile)
}

// NewRootCmd builds the eqviz command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{v: config.NewViper()}
	d := config.Default()

	cmd := &cobra.Command{
		Use:   "eqviz",
		Short: "Terminal spectrum display for EQ frames received over UDP",
		Long: `Listen for EQ band frames on a UDP port and draw them as bars.

Only the newest frame of every burst is shown. Levels rise quickly toward each
new frame and fall back with a decaying trail.

Keyboard shortcuts:
  q / Esc / Ctrl+C  Quit

Examples:
  eqviz
  eqviz --port 40000 --fps 60
  eqviz --style row --frontend line
  eqviz --smoothing direct`,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return runVisualizer(cmd.Context(), cfg)
		},
	}
	cmd.SetVersionTemplate("eqviz {{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "config file (default ./eqviz.yaml, then ~/.config/eqviz/config.yaml)")
	pf.String("host", d.Host, "address to listen on")
	pf.Int("port", d.Port, "UDP port to listen on")

	f := cmd.Flags()
	f.Int("fps", d.FPS, "target refresh rate in frames per second")
	f.String("style", d.Style, "render style: square or row")
	f.String("smoothing", d.Smoothing, "smoothing: exponential, direct or spring")
	f.Float64("attack", d.Attack, "weight of a rising target (exponential smoothing)")
	f.Float64("decay", d.Decay, "fraction of a level kept per falling frame (exponential smoothing)")
	f.String("frontend", d.Frontend, "display: tcell, tea or line")
	f.String("log-file", d.LogFile, "append logs to this file")

	bindFlag(opts.v, "host", pf.Lookup("host"))
	bindFlag(opts.v, "port", pf.Lookup("port"))
	for _, name := range []string{"fps", "style", "smoothing", "attack", "decay", "frontend"} {
		bindFlag(opts.v, name, f.Lookup(name))
	}
	bindFlag(opts.v, "log_file", f.Lookup("log-file"))

	cmd.AddCommand(newMonitorCmd(opts), newConfigCmd(opts), newVersionCmd())
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

func printError(err error) {
	var e *errors.Error
	if stderrors.As(err, &e) {
		fmt.Fprint(os.Stderr, err.Error())
		return
	}
	fmt.Fprintf(os.Stderr, "✗ %v\n", err)
}
