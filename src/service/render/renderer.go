// Package render draws a laid-out chart onto a go-chart vector or raster surface.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gitlab.com/open-soft/go-stats-chart/src/model"
	"gitlab.com/open-soft/go-stats-chart/src/utils"
)

type Format string

const FormatSVG Format = "svg"
const FormatPNG Format = "png"

var ErrUnsupportedFormat = errors.New("render: unsupported format")

func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, value)
}

func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}

	return "image/svg+xml"
}

type Theme struct {
	Background   drawing.Color
	Grid         drawing.Color
	Axis         drawing.Color
	Line         drawing.Color
	Marker       drawing.Color
	Text         drawing.Color
	FontSize     float64
	LineWidth    float64
	AxisWidth    float64
	MarkerRadius float64
}

func DefaultTheme() Theme {
	return Theme{
		Background:   drawing.ColorFromHex("0c0c0c"),
		Grid:         drawing.ColorFromHex("b6d9e6").WithAlpha(128),
		Axis:         drawing.ColorFromHex("c3c3c4"),
		Line:         drawing.ColorFromHex("0047ff"),
		Marker:       drawing.ColorFromHex("0047ff"),
		Text:         drawing.ColorWhite,
		FontSize:     12,
		LineWidth:    2,
		AxisWidth:    2,
		MarkerRadius: 3,
	}
}

// Renderer turns geometry into drawn shapes. It performs no scaling of its own:
// every coordinate comes from the geometry bundle, except the fixed axis frame.
type Renderer struct {
	Formatter *utils.Formatter
	Theme     Theme
}

func (r *Renderer) Render(geometry model.Geometry, format Format, w io.Writer) error {
	width := r.Formatter.Round(geometry.Viewport.Width)
	height := r.Formatter.Round(geometry.Viewport.Height)
	if width <= 0 || height <= 0 {
		return errors.New("render: empty viewport")
	}

	provider := chart.SVG
	if format == FormatPNG {
		provider = chart.PNG
	} else if format != FormatSVG {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	surface, err := provider(width, height)
	if err != nil {
		return err
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	surface.SetFont(font)

	frame := newFrame(geometry.Viewport)

	r.drawBackground(surface, width, height)
	r.drawGrid(surface, geometry, frame)
	r.drawTicks(surface, geometry, frame)
	r.drawMarkers(surface, geometry)
	r.drawLines(surface, geometry)
	r.drawAxes(surface, frame)

	return surface.Save(w)
}

// frame holds the fixed axis box: 8%-92% horizontally, 10%-90% vertically.
type frame struct {
	left, right, top, bottom float64
	tickEnd, labelY          float64
	captionX, captionY       float64
}

func newFrame(viewport model.Viewport) frame {
	return frame{
		left:     viewport.Width * 0.08,
		right:    viewport.Width * 0.92,
		top:      viewport.Height * 0.1,
		bottom:   viewport.Height * 0.9,
		tickEnd:  viewport.Height * 0.92,
		labelY:   viewport.Height * 0.95,
		captionX: viewport.Width * 0.05,
		captionY: viewport.Height * 0.82,
	}
}

func (r *Renderer) drawBackground(surface chart.Renderer, width, height int) {
	surface.ResetStyle()
	surface.SetFillColor(r.Theme.Background)
	surface.MoveTo(0, 0)
	surface.LineTo(width, 0)
	surface.LineTo(width, height)
	surface.LineTo(0, height)
	surface.Close()
	surface.Fill()
}

func (r *Renderer) drawGrid(surface chart.Renderer, geometry model.Geometry, f frame) {
	surface.ResetStyle()
	surface.SetStrokeColor(r.Theme.Grid)
	surface.SetStrokeWidth(1)

	for _, x := range geometry.GridLinesX {
		r.segment(surface, x, f.bottom, x, f.top)
	}
	for _, y := range geometry.GridLinesY {
		r.segment(surface, f.left, y, f.right, y)
	}
}

func (r *Renderer) drawTicks(surface chart.Renderer, geometry model.Geometry, f frame) {
	surface.ResetStyle()
	surface.SetStrokeColor(r.Theme.Axis)
	surface.SetStrokeWidth(r.Theme.AxisWidth)
	surface.SetFontColor(r.Theme.Text)
	surface.SetFontSize(r.Theme.FontSize)

	if geometry.Captions != nil {
		surface.Text(strings.ToUpper(geometry.Captions.X), r.Formatter.Round(f.left), r.Formatter.Round(f.labelY))
		surface.SetTextRotation(-math.Pi / 2)
		surface.Text(strings.ToUpper(geometry.Captions.Y), r.Formatter.Round(f.captionX), r.Formatter.Round(f.captionY))
		surface.ClearTextRotation()
		return
	}

	for _, tick := range geometry.Ticks {
		r.segment(surface, tick.X, f.bottom, tick.X, f.tickEnd)
		if tick.Label == "" {
			continue
		}

		label := strings.ToUpper(tick.Label)
		box := surface.MeasureText(label)
		surface.Text(label, r.Formatter.Round(tick.X)-box.Width()/2, r.Formatter.Round(f.labelY))
	}
}

func (r *Renderer) drawMarkers(surface chart.Renderer, geometry model.Geometry) {
	surface.ResetStyle()
	surface.SetFillColor(r.Theme.Marker)

	for _, series := range geometry.Series {
		for _, point := range series.Points {
			surface.Circle(r.Theme.MarkerRadius, r.Formatter.Round(point.X), r.Formatter.Round(point.Y))
			surface.Fill()
		}
	}
}

func (r *Renderer) drawLines(surface chart.Renderer, geometry model.Geometry) {
	surface.ResetStyle()
	surface.SetStrokeColor(r.Theme.Line)
	surface.SetStrokeWidth(r.Theme.LineWidth)

	for _, line := range geometry.Polylines {
		for i := 0; i+1 < len(line.Coordinates); i += 2 {
			x := r.Formatter.Round(line.Coordinates[i])
			y := r.Formatter.Round(line.Coordinates[i+1])
			if i == 0 {
				surface.MoveTo(x, y)
				continue
			}
			surface.LineTo(x, y)
		}
		surface.Stroke()
	}
}

func (r *Renderer) drawAxes(surface chart.Renderer, f frame) {
	surface.ResetStyle()
	surface.SetStrokeColor(r.Theme.Axis)
	surface.SetStrokeWidth(r.Theme.AxisWidth)

	r.segment(surface, f.left, f.bottom, f.left, f.top)
	r.segment(surface, f.left, f.bottom, f.right, f.bottom)
}

func (r *Renderer) segment(surface chart.Renderer, x1, y1, x2, y2 float64) {
	surface.MoveTo(r.Formatter.Round(x1), r.Formatter.Round(y1))
	surface.LineTo(r.Formatter.Round(x2), r.Formatter.Round(y2))
	surface.Stroke()
}
