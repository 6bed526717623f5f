package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitapredict/heart"
	"github.com/vitapredict/heart/host/headless"
	"github.com/vitapredict/heart/integration/ggsurface"
	"github.com/vitapredict/heart/internal/config"
)

func (a *app) renderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Simulate offscreen and write the last frame as PNG",
		Long: `Render runs the particle field without a display for a number of frames
and writes the final frame as PNG. An output of "-" writes to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.render(cmd)
		},
	}

	f := cmd.Flags()
	f.IntP("width", "W", 0, "width in logical units")
	f.IntP("height", "H", 0, "height in logical units")
	f.Float64("ratio", 0, "device pixel ratio, clamped to 2")
	f.IntP("frames", "n", 0, "frames to simulate")
	f.StringP("output", "o", "", `PNG path, or "-" for stdout`)
	f.String("backend", "", "surface backend: raster or gg")
	f.String("background", "", "background color as #RRGGBB")
	f.String("caption", "", "caption drawn under the heart")
	f.Bool("sweep", false, "drag a pointer across the heart while simulating")
	a.bind(cmd, map[string]string{
		"render.width":       "width",
		"render.height":      "height",
		"render.pixel_ratio": "ratio",
		"render.frames":      "frames",
		"render.output":      "output",
		"render.backend":     "backend",
		"render.background":  "background",
		"render.caption":     "caption",
		"render.sweep":       "sweep",
	}, false)
	return cmd
}

func (a *app) render(cmd *cobra.Command) error {
	rc := a.cfg.Render
	w, h := float64(rc.Width), float64(rc.Height)

	host := headless.New(w, h, headless.WithPixelRatio(rc.PixelRatio))
	opts := a.fieldOptions()
	if rc.Backend == "gg" {
		s := ggsurface.New()
		opts = append(opts, heart.WithSurfaceFactory(s.Factory()))
	}
	field := heart.New(host, opts...)
	if field == nil {
		return errors.New("render: field could not be created")
	}
	defer field.Dispose()

	var script []headless.Input
	if rc.Sweep {
		script = headless.Sweep(heart.Pt(0, h/2), heart.Pt(w, h/2), 0, rc.Frames/2)
	}
	frames := host.Play(field, script, rc.Frames)

	// Both colors were checked by config validation.
	bg, _ := config.ParseColor(rc.Background)
	fg, _ := config.ParseColor(rc.CaptionColor)
	export := headless.ExportOptions{Background: bg, Caption: rc.Caption, CaptionColor: fg}

	if rc.Output == "-" {
		if err := headless.WritePNG(cmd.OutOrStdout(), field, export); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	} else {
		if err := headless.SavePNG(rc.Output, field, export); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %d frames, %d particles)\n",
			rc.Output, rc.Width, rc.Height, frames, field.Len())
	}
	a.logger.Info("render finished",
		"output", rc.Output, "backend", rc.Backend, "frames", frames, "particles", field.Len())
	return nil
}
