package indicator

import (
	"errors"

	"github.com/katalvlaran/lineflow/engine"
	"github.com/katalvlaran/lineflow/series"
)

// Sentinel errors for indicator construction.
var (
	// ErrBadPeriod indicates a look-back period smaller than one bar.
	ErrBadPeriod = errors.New("indicator: period must be at least 1")

	// ErrNoSource indicates the input stream has no usable source line
	// (no lines at all, or the requested name/index is not declared).
	ErrNoSource = errors.New("indicator: no usable source line")
)

// defSourceName is the line an indicator reads when the input declares
// one and no option overrides it.
const defSourceName = "close"

// Option configures which line of the input stream an indicator reads.
type Option func(*config)

type config struct {
	byIndex bool
	index   int
	name    string
}

// WithSourceLine selects the source by positional index.
func WithSourceLine(i int) Option {
	return func(c *config) {
		c.byIndex = true
		c.index = i
	}
}

// WithSourceName selects the source by declared line name.
func WithSourceName(name string) Option {
	return func(c *config) {
		c.byIndex = false
		c.name = name
	}
}

// resolveSource picks the input line an indicator computes over:
// the configured index or name, else "close" when declared, else line 0.
func resolveSource(src engine.Stream, opts []Option) (*series.Line, error) {
	g := src.Lines()
	if g == nil {
		return nil, ErrNoSource
	}

	cfg := config{name: defSourceName}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.byIndex {
		ln, err := g.Line(cfg.index)
		if err != nil {
			return nil, ErrNoSource
		}

		return ln, nil
	}

	if ln, err := g.LineByName(cfg.name); err == nil {
		return ln, nil
	}
	// Fall back to the reference line for single-line streams
	// (indicator-on-indicator chains).
	ln, err := g.Line(0)
	if err != nil {
		return nil, ErrNoSource
	}

	return ln, nil
}

// window copies src[end-period+1 .. end] into buf (sized period) by
// absolute index, the shared batch-mode gather.
func window(src *series.Line, end, period int, buf []float64) error {
	for k := 0; k < period; k++ {
		v, err := src.At(end - period + 1 + k)
		if err != nil {
			return err
		}
		buf[k] = v
	}

	return nil
}

// gather copies the trailing period values ending at the cursor into
// buf, the shared step-mode gather.
func gather(src *series.Line, period int, buf []float64) error {
	for k := 0; k < period; k++ {
		v, err := src.Get(k + 1 - period)
		if err != nil {
			return err
		}
		buf[k] = v
	}

	return nil
}
