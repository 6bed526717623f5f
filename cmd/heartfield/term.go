package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/vitapredict/heart/host/term"
)

func (a *app) termCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Show the particle heart in the terminal",
		Long: `Term draws the particle heart with half-block characters. Move the
mouse over it to scatter particles; press q, Esc or Ctrl-C to quit. Logs go
to term.log_file because the terminal owns the screen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.term(cmd)
		},
	}
	cmd.Flags().Int("fps", 0, "frames per second")
	cmd.Flags().String("log-file", "", "log file path; empty disables logging")
	a.bind(cmd, map[string]string{
		"term.fps":      "fps",
		"term.log_file": "log-file",
	}, false)
	return cmd
}

func (a *app) term(cmd *cobra.Command) error {
	lc := a.cfg.Logger
	lc.LogFile = a.cfg.Term.LogFile
	logger, closer, err := newLogger(nil, lc)
	if err != nil {
		return err
	}
	a.track(closer)
	a.useLogger(logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: open screen: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := term.New(screen, term.WithFPS(float64(a.cfg.Term.FPS)))
	return h.Run(ctx, a.fieldOptions()...)
}
