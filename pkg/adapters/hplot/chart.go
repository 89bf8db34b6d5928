// Package hplot renders a frequency table to an image file using the
// go-hep plotting stack. It is strictly a consumer of the core's data: the
// pipeline hands it a finished FrequencyTable and nothing else.
package hplot

import (
	"fmt"
	"image/color"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"

	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
)

// Options configure the rendered chart. The mapstructure tags let the
// config layer decode them from the loose render.options map.
type Options struct {
	// Path of the output image. The extension picks the format (png, pdf, svg).
	Path string `mapstructure:"path"`
	// WidthCM is the plot width in centimeters. Height is chosen automatically.
	WidthCM float64 `mapstructure:"width_cm"`
	// Title drawn above the plot.
	Title string `mapstructure:"title"`
}

// Renderer implements ports.ChartRenderer by writing a bar chart image,
// one width-1 bin per final position.
type Renderer struct {
	opts Options
}

// New creates a renderer. An empty path defaults to "distribution.png",
// a zero width to 15 cm.
func New(opts Options) *Renderer {
	if opts.Path == "" {
		opts.Path = "distribution.png"
	}
	if opts.WidthCM <= 0 {
		opts.WidthCM = 15
	}
	if opts.Title == "" {
		opts.Title = "Final position distribution"
	}
	return &Renderer{opts: opts}
}

// Render draws the table and saves it to the configured path.
func (r *Renderer) Render(table domain.FrequencyTable) error {
	if len(table) == 0 {
		return fmt.Errorf("cannot chart an empty table: %w", domain.ErrInvalidArgument)
	}

	buckets := table.Buckets()
	min, max := buckets[0], buckets[len(buckets)-1]

	// One bin per integer position, centered on it.
	h := hbook.NewH1D(max-min+1, float64(min)-0.5, float64(max)+0.5)
	for bucket, count := range table {
		h.Fill(float64(bucket), float64(count))
	}

	p := hplot.New()
	p.Title.Text = r.opts.Title
	p.X.Label.Text = "final position"
	p.Y.Label.Text = "trials"

	hh := hplot.NewH1D(h)
	hh.Color = color.NRGBA{B: 255, A: 255}
	hh.FillColor = color.NRGBA{B: 255, A: 64}
	p.Add(hh, hplot.NewGrid())

	width := vg.Length(r.opts.WidthCM) * vg.Centimeter
	if err := p.Save(width, -1, r.opts.Path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}

// Path returns the output path the renderer writes to.
func (r *Renderer) Path() string {
	return r.opts.Path
}
