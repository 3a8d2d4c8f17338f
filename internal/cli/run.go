package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/eqviz/internal/bands"
	"github.com/olivier-w/eqviz/internal/config"
	"github.com/olivier-w/eqviz/internal/engine"
	"github.com/olivier-w/eqviz/internal/errors"
	"github.com/olivier-w/eqviz/internal/listener"
	"github.com/olivier-w/eqviz/internal/logger"
	"github.com/olivier-w/eqviz/internal/screen"
	"github.com/olivier-w/eqviz/internal/ui"
	"github.com/olivier-w/eqviz/internal/visualizer"
	"golang.org/x/term"
)

func runVisualizer(ctx context.Context, cfg *config.Config) error {
	renderer, err := visualizer.ByName(cfg.Style)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Unknown style", "Use square or row")
	}
	smoother, err := bands.New(cfg.SmootherOptions())
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Unknown smoothing", "Use exponential, direct or spring")
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	conn, err := listen(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	lg := logger.New("[eqviz]")
	lg.Info("listening on %s (style=%s smoothing=%s fps=%d frontend=%s)",
		cfg.Addr(), renderer.Name(), smoother.Name(), cfg.FPS, cfg.Frontend)

	e := engine.New(conn, engine.Options{
		Addr:     cfg.Addr(),
		FPS:      cfg.FPS,
		Smoother: smoother,
		Renderer: renderer,
		Logger:   lg,
	})

	switch cfg.Frontend {
	case config.FrontendLine:
		fmt.Printf("Listening UDP on %s ... (Ctrl+C to quit)\n", cfg.Addr())
		return e.RunLine(ctx, os.Stdout)
	case config.FrontendTea:
		return runTea(ctx, e, cfg.Addr())
	default:
		return runTcell(ctx, e)
	}
}

func listen(cfg *config.Config) (*listener.Conn, error) {
	conn, err := listener.Listen(cfg.Host, cfg.Port)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrNetwork,
			"Can't listen on UDP "+cfg.Addr(),
			"Check that no other program is bound to the port, or pick another with --port")
	}
	return conn, nil
}

// setupLogging sends the standard logger to path, or discards it so log
// lines never land on top of the display.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Can't open log file "+path,
			"Check the directory exists and is writable")
	}
	return func() { f.Close() }, nil
}

func runTcell(ctx context.Context, e *engine.Engine) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerminal,
			"Standard output is not a terminal",
			"Run eqviz in a terminal, or use --frontend line")
	}
	scr, err := screen.OpenTcell()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Can't initialize the terminal",
			"Check TERM is set, or use --frontend line")
	}
	defer scr.Close()
	return e.Run(ctx, scr)
}

func runTea(ctx context.Context, e *engine.Engine, addr string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerminal,
			"Standard output is not a terminal",
			"Run eqviz in a terminal, or use --frontend line")
	}
	p := tea.NewProgram(ui.New(e, addr), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if stderrors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrTerminal, "Display failed", "")
	}
	if m, ok := final.(ui.Model); ok {
		return m.Err()
	}
	return nil
}
