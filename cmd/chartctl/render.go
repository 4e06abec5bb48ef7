package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"gitlab.com/open-soft/go-stats-chart/src/service/render"
	"gitlab.com/open-soft/go-stats-chart/src/utils"
)

type renderOptions struct {
	layoutOptions
	output string
	format string
	watch  bool
}

func newRenderCommand() *cobra.Command {
	options := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [input]",
		Short: "Render a chart file to SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			if err := options.renderFile(inputPath); err != nil {
				return err
			}

			if !options.watch {
				return nil
			}

			return options.watchFile(inputPath)
		},
	}

	options.bind(cmd)
	cmd.Flags().StringVarP(&options.output, "output", "o", "chart.svg", "Output file path")
	cmd.Flags().StringVar(&options.format, "format", "", "Output format: svg or png (default: from output extension)")
	cmd.Flags().BoolVar(&options.watch, "watch", false, "Re-render whenever the input file changes")

	return cmd
}

func (o *renderOptions) getFormat() (render.Format, error) {
	if o.format != "" {
		return render.ParseFormat(o.format)
	}

	return render.ParseFormat(strings.TrimPrefix(filepath.Ext(o.output), "."))
}

func (o *renderOptions) renderFile(inputPath string) error {
	format, err := o.getFormat()
	if err != nil {
		return err
	}

	geometry, err := o.layoutFile(inputPath)
	if err != nil {
		return err
	}

	renderer := render.Renderer{
		Formatter: &utils.Formatter{},
		Theme:     render.DefaultTheme(),
	}

	buffer := bytes.Buffer{}
	if err := renderer.Render(geometry.Geometry, format, &buffer); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if err := os.WriteFile(o.output, buffer.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.Printf("[%s] rendered to %s", geometry.Chart, o.output)

	return nil
}

// watchFile follows the input's directory so editors that replace the file
// on save still trigger a render. Failed renders are logged and skipped.
func (o *renderOptions) watchFile(inputPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	defer watcher.Close()

	absolute, err := filepath.Abs(inputPath)
	if err != nil {
		return err
	}

	if err := watcher.Add(filepath.Dir(absolute)); err != nil {
		return fmt.Errorf("failed watching %s: %w", inputPath, err)
	}

	log.Printf("Watching %s for changes...", inputPath)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != absolute || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			if err := o.renderFile(inputPath); err != nil {
				log.Printf("render skipped: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)
		}
	}
}
