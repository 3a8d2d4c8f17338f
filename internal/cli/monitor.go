package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/olivier-w/eqviz/internal/listener"
	"github.com/olivier-w/eqviz/internal/packet"
	"github.com/spf13/cobra"
)

// previewLen is how many values from each end of a frame monitor prints.
const previewLen = 8

func newMonitorCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Print every EQ frame received, one line per datagram",
		Long: `Print a summary of each EQ frame as it arrives: the band count, the first
and last few values, and the sender. Foreign datagrams are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			conn, err := listen(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Listening on %s\n", cfg.Addr())
			return monitor(cmd.Context(), conn, out)
		},
	}
}

// monitor prints frames from conn until ctx is cancelled. It closes conn.
func monitor(ctx context.Context, conn *listener.Conn, out io.Writer) error {
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()
	defer conn.Close()

	o := termenv.NewOutput(out)
	buf := make([]byte, packet.MaxLen)
	for {
		n, from, err := conn.ReadFrom(buf)
		if err != nil {
			if stderrors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		bands, ok := packet.Parse(buf[:n])
		if !ok {
			continue
		}
		fmt.Fprintf(out, "%s  %s\n", formatFrame(bands), o.String("from "+from.String()).Faint())
	}
}

// formatFrame summarizes a frame as its band count plus the first and last
// values, e.g. "bands=64 first=[1, 2, ...] last=[..., 64]".
func formatFrame(bands []byte) string {
	head := bands[:min(previewLen, len(bands))]
	tail := bands[max(0, len(bands)-previewLen):]
	return fmt.Sprintf("bands=%d first=%s last=%s", len(bands), formatValues(head), formatValues(tail))
}

func formatValues(vals []byte) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(int(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
