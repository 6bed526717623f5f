package main

import (
	"github.com/spf13/cobra"

	"github.com/vitapredict/heart/host/window"
)

func (a *app) windowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Show the particle heart in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			wc := a.cfg.Window
			return window.Run(window.Config{
				Width:  wc.Width,
				Height: wc.Height,
				Title:  wc.Title,
				TPS:    wc.TPS,
			}, a.fieldOptions()...)
		},
	}
	cmd.Flags().String("title", "", "window title")
	cmd.Flags().Int("tps", 0, "ticks per second")
	a.bind(cmd, map[string]string{
		"window.title": "title",
		"window.tps":   "tps",
	}, false)
	return cmd
}
