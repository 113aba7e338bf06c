package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vango-dev/toastify/internal/errors"
	"github.com/vango-dev/toastify/pkg/engine"
	"github.com/vango-dev/toastify/pkg/render"
	"github.com/vango-dev/toastify/pkg/toast"
)

type renderFlags struct {
	messages []string
	title    string
	level    string
	position string
	theme    string
	pretty   bool
}

func renderCmd() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a container to HTML",
		Long: `Render the toast container with the given toasts and print the HTML.

Useful for previewing markup and class names without a browser.

Examples:
  toastify render -m "Saved!" --type=success
  toastify render -m one -m two --position=bottom-left --pretty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runRender(cmd.OutOrStdout(), cfg.ToastOptions(), f)
		},
	}

	addConfigFlag(cmd)
	cmd.Flags().StringArrayVarP(&f.messages, "message", "m", nil, "Toast message (repeatable)")
	cmd.Flags().StringVar(&f.title, "title", "", "Toast title")
	cmd.Flags().StringVarP(&f.level, "type", "t", "", "Toast type: default, info, success, warning, error")
	cmd.Flags().StringVar(&f.position, "position", "", "Toast position (default from config)")
	cmd.Flags().StringVar(&f.theme, "theme", "", "Toast theme: light, dark, colored")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Indent the HTML output")

	return cmd
}

func runRender(w io.Writer, opts toast.Options, f renderFlags) error {
	level, err := toast.ParseType(f.level)
	if err != nil {
		return errors.New("T103").Wrap(err)
	}

	var extra []toast.Option
	if f.position != "" {
		pos, err := toast.ParsePosition(f.position)
		if err != nil {
			return errors.New("T201").
				WithDetail("--position must be a screen position.").
				Wrap(err)
		}
		extra = append(extra, toast.WithPosition(pos))
	}
	if f.theme != "" {
		theme, err := toast.ParseTheme(f.theme)
		if err != nil {
			return errors.New("T201").
				WithDetail("--theme must be light, dark or colored.").
				Wrap(err)
		}
		extra = append(extra, toast.WithTheme(theme))
	}

	eng := engine.New(
		engine.WithOptions(opts),
		engine.WithLogger(newLogger(io.Discard, slog.LevelError)),
	)
	defer eng.Close()

	for _, msg := range f.messages {
		if f.title != "" {
			toast.ShowWithTitle(eng, level, f.title, msg, extra...)
		} else {
			toast.Show(eng, level, msg, extra...)
		}
	}

	container := toast.NewContainer(eng, eng.Options(), nil)
	renderer := render.NewRenderer(render.RendererConfig{Pretty: f.pretty})
	html, err := renderer.RenderToString(container.Render())
	if err != nil {
		return errors.New("T200").Wrap(err)
	}

	_, err = fmt.Fprintln(w, html)
	return err
}
