// Package terminal renders a frequency table as a bar chart in the
// terminal, scaled to the available width.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
)

const (
	defaultWidth = 80
	// Columns consumed by the "position | ... count" frame around each bar.
	frameWidth = 14
)

// Renderer writes frequency tables as horizontal bars, one bucket per
// line, smallest position first.
type Renderer struct {
	out     io.Writer
	width   int
	profile termenv.Profile
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth fixes the total line width instead of probing the terminal.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		r.width = width
	}
}

// WithProfile overrides the detected color profile. termenv.Ascii disables
// color entirely.
func WithProfile(profile termenv.Profile) Option {
	return func(r *Renderer) {
		r.profile = profile
	}
}

// New creates a terminal renderer writing to out. When out is a terminal
// the bar width follows its size; otherwise it falls back to 80 columns.
func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:     out,
		profile: termenv.ColorProfile(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.width == 0 {
		r.width = detectWidth(out)
	}
	return r
}

func detectWidth(out io.Writer) int {
	if f, ok := out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > frameWidth {
			return w
		}
	}
	return defaultWidth
}

// Render writes the table as bars. Buckets appear in ascending position
// order; the longest bar fills the available width.
func (r *Renderer) Render(table domain.FrequencyTable) error {
	if len(table) == 0 {
		_, err := fmt.Fprintln(r.out, "(empty distribution)")
		return err
	}

	barSpace := r.width - frameWidth
	if barSpace < 1 {
		barSpace = 1
	}
	max := table.Max()

	for _, bucket := range table.Buckets() {
		count := table[bucket]
		barLen := 0
		if max > 0 {
			barLen = count * barSpace / max
		}
		if count > 0 && barLen == 0 {
			barLen = 1 // non-empty buckets always show
		}

		bar := r.profile.String(strings.Repeat("█", barLen)).Foreground(r.profile.Color("6"))
		if _, err := fmt.Fprintf(r.out, "%4d | %s %d\n", bucket, bar, count); err != nil {
			return err
		}
	}
	return nil
}
