package wavelet

// Default parameters of the generated pulse.
const (
	DefaultLength = 0.265 // s
	DefaultStep   = 0.001 // s
	DefaultPeakHz = 40.0
)

// Generator creates Ricker wavelets from a fixed configuration.
type Generator struct {
	length float64
	step   float64
	peakHz float64
	mode   AxisMode
}

// Option configures a Generator.
type Option func(*Generator)

// WithLength sets the total duration of the time axis in seconds.
func WithLength(seconds float64) Option {
	return func(g *Generator) {
		g.length = seconds
	}
}

// WithStep sets the sampling interval in seconds.
func WithStep(seconds float64) Option {
	return func(g *Generator) {
		g.step = seconds
	}
}

// WithPeakFrequency sets the dominant frequency in Hz.
func WithPeakFrequency(hz float64) Option {
	return func(g *Generator) {
		g.peakHz = hz
	}
}

// WithAxisMode selects the time grid layout.
func WithAxisMode(mode AxisMode) Option {
	return func(g *Generator) {
		g.mode = mode
	}
}

// NewGenerator creates a generator with the default 0.265 s, 1 ms, 40 Hz
// pulse, modified by opts. Parameters are validated by [Generator.Generate].
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		length: DefaultLength,
		step:   DefaultStep,
		peakHz: DefaultPeakHz,
		mode:   AxisSymmetric,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Length returns the configured axis duration.
func (g *Generator) Length() float64 { return g.length }

// Step returns the configured sampling interval.
func (g *Generator) Step() float64 { return g.step }

// PeakFrequency returns the configured dominant frequency.
func (g *Generator) PeakFrequency() float64 { return g.peakHz }

// AxisMode returns the configured grid layout.
func (g *Generator) AxisMode() AxisMode { return g.mode }

// Generate builds the time axis and evaluates the wavelet on it.
func (g *Generator) Generate() (Wavelet, error) {
	t, err := TimeAxis(g.length, g.step, g.mode)
	if err != nil {
		return Wavelet{}, err
	}

	a, err := Ricker(t, g.peakHz)
	if err != nil {
		return Wavelet{}, err
	}

	return Wavelet{Time: t, Amplitude: a, PeakHz: g.peakHz, Step: g.step}, nil
}
