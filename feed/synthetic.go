package feed

import (
	"math"
	"math/rand"
	"time"
)

// Defaults for the synthetic bar generator.
const (
	defSynthStart    = 100.0  // initial price S0 (>0)
	defSynthDrift    = 0.0005 // daily drift μ
	defSynthVol      = 0.02   // daily volatility σ (≥0)
	defSynthSteps    = 8      // intraday steps per bar (forms the wick)
	defSynthBaseVol  = 1000.0 // volume floor per bar
	defSynthVolScale = 5e4    // volume sensitivity to intraday range
)

// defSynthBase is the timestamp of the first synthetic bar.
var defSynthBase = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// SynthOption configures the synthetic generator.
type SynthOption func(*synthConfig)

type synthConfig struct {
	start    float64
	drift    float64
	vol      float64
	steps    int
	base     time.Time
	interval time.Duration
}

// WithStartPrice sets the initial price S0 (must be > 0 to take effect).
func WithStartPrice(s0 float64) SynthOption {
	return func(c *synthConfig) {
		if s0 > 0 {
			c.start = s0
		}
	}
}

// WithDrift sets the per-bar drift μ.
func WithDrift(mu float64) SynthOption {
	return func(c *synthConfig) { c.drift = mu }
}

// WithVolatility sets the per-bar volatility σ (negative values ignored).
func WithVolatility(sigma float64) SynthOption {
	return func(c *synthConfig) {
		if sigma >= 0 {
			c.vol = sigma
		}
	}
}

// WithBaseTime sets the timestamp of the first bar.
func WithBaseTime(t time.Time) SynthOption {
	return func(c *synthConfig) { c.base = t }
}

// WithInterval sets the spacing between bars (default 24h).
func WithInterval(d time.Duration) SynthOption {
	return func(c *synthConfig) {
		if d > 0 {
			c.interval = d
		}
	}
}

// SyntheticBars emits n deterministic OHLCV bars following a
// discrete-time GBM path with a small fixed number of intraday steps per
// bar, so highs and lows form realistic wicks. The same (n, seed) always
// yields the same bars.
//
// Model, per intraday step with Δt = 1/steps:
//
//	S ← S · exp((μ − 0.5σ²)Δt + σ√Δt · Z),  Z ~ N(0,1)
//
// Invariant by construction: low ≤ min(open, close) ≤ max(open, close) ≤ high.
// Complexity: O(n · steps) time, O(n) memory.
func SyntheticBars(n int, seed int64, opts ...SynthOption) []Bar {
	if n < 1 {
		return nil
	}

	cfg := synthConfig{
		start:    defSynthStart,
		drift:    defSynthDrift,
		vol:      defSynthVol,
		steps:    defSynthSteps,
		base:     defSynthBase,
		interval: 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	rng := rand.New(rand.NewSource(seed))
	bars := make([]Bar, n)

	dt := 1.0 / float64(cfg.steps)
	driftTerm := (cfg.drift - 0.5*cfg.vol*cfg.vol) * dt
	noiseScale := cfg.vol * math.Sqrt(dt)

	price := cfg.start
	for i := 0; i < n; i++ {
		open := price
		high, low := open, open

		for s := 0; s < cfg.steps; s++ {
			price *= math.Exp(driftTerm + noiseScale*rng.NormFloat64())
			if price > high {
				high = price
			}
			if price < low {
				low = price
			}
		}

		bars[i] = Bar{
			Time:   cfg.base.Add(time.Duration(i) * cfg.interval),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  price,
			Volume: defSynthBaseVol + defSynthVolScale*(high-low)/open,
		}
	}

	return bars
}
