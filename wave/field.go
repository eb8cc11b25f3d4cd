package wave

import "fmt"

// MinSize is the smallest width or height a field accepts; the solver needs at
// least one interior row and column.
const MinSize = 3

// Scheme selects the update formula used by Step.
type Scheme int

const (
	// FullWaveEquation applies the discrete wave equation with an explicit
	// waveSpeed coefficient on the 5-point Laplacian.
	FullWaveEquation Scheme = iota
	// Averaging uses half the neighbour sum minus the previous height. It has
	// no waveSpeed term and ignores that parameter.
	Averaging
)

// String returns the flag name of the scheme.
func (s Scheme) String() string {
	switch s {
	case FullWaveEquation:
		return "full"
	case Averaging:
		return "averaging"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// ParseScheme maps a flag name back to its Scheme.
func ParseScheme(name string) (Scheme, error) {
	switch name {
	case "full", "wave":
		return FullWaveEquation, nil
	case "averaging", "avg":
		return Averaging, nil
	}
	return 0, fmt.Errorf("unknown scheme %q: %w", name, ErrInvalidParameter)
}

func (s Scheme) valid() bool {
	return s == FullWaveEquation || s == Averaging
}

// Params are the coefficients read by Step.
//
// Damping is normally in [0,1]. A damping above 1 or below 0 is accepted: a
// negative value flips the sign of the field every step and, with magnitude
// above 1, amplifies it. Negative wave speeds are accepted as well.
type Params struct {
	WaveSpeed float64
	Damping   float64
}

// DefaultParams returns the coefficients a new field starts with.
func DefaultParams() Params {
	return Params{WaveSpeed: 0.35, Damping: 0.99}
}

// HeightField stores the simulation buffers and coefficients for one water
// surface. Cells are addressed as (row, col) with row in [0,height) and col in
// [0,width).
//
// A HeightField is not safe for concurrent use. Step rotates the buffers, so a
// field must be driven by a single caller at a time.
type HeightField struct {
	width, height int
	curr          []float64
	prev          []float64
	next          []float64
	params        Params
	scheme        Scheme
}

// NewHeightField allocates a zeroed field using DefaultParams.
func NewHeightField(width, height int, scheme Scheme) (*HeightField, error) {
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("%dx%d grid, need at least %dx%d: %w",
			width, height, MinSize, MinSize, ErrInvalidDimensions)
	}
	if !scheme.valid() {
		return nil, fmt.Errorf("scheme %v: %w", scheme, ErrInvalidParameter)
	}
	n := width * height
	return &HeightField{
		width: width, height: height,
		curr:   make([]float64, n),
		prev:   make([]float64, n),
		next:   make([]float64, n),
		params: DefaultParams(),
		scheme: scheme,
	}, nil
}

// Width returns the number of columns.
func (f *HeightField) Width() int { return f.width }

// Height returns the number of rows.
func (f *HeightField) Height() int { return f.height }

// Scheme reports the update formula chosen at construction.
func (f *HeightField) Scheme() Scheme { return f.scheme }

// Params returns the coefficients used by the next Step.
func (f *HeightField) Params() Params { return f.params }

// SetParameters replaces the coefficients used by subsequent steps. Values are
// not bounds checked; see Params.
func (f *HeightField) SetParameters(waveSpeed, damping float64) {
	f.params = Params{WaveSpeed: waveSpeed, Damping: damping}
}

// Reset zero-fills both grids and installs defaults as the coefficients.
func (f *HeightField) Reset(defaults Params) {
	clear(f.curr)
	clear(f.prev)
	clear(f.next)
	f.params = defaults
}

func (f *HeightField) index(row, col int) (int, error) {
	if row < 0 || row >= f.height || col < 0 || col >= f.width {
		return 0, fmt.Errorf("cell (%d,%d) outside %dx%d grid: %w",
			row, col, f.width, f.height, ErrOutOfRange)
	}
	return row*f.width + col, nil
}

// At returns the current height of a cell.
func (f *HeightField) At(row, col int) (float64, error) {
	idx, err := f.index(row, col)
	if err != nil {
		return 0, err
	}
	return f.curr[idx], nil
}

// Previous returns the height a cell had one step before the current state.
func (f *HeightField) Previous(row, col int) (float64, error) {
	idx, err := f.index(row, col)
	if err != nil {
		return 0, err
	}
	return f.prev[idx], nil
}

// Set writes a height into the current state. Border cells may be written; the
// next Step resets them to zero.
func (f *HeightField) Set(row, col int, value float64) error {
	idx, err := f.index(row, col)
	if err != nil {
		return err
	}
	f.curr[idx] = value
	return nil
}

// Row returns the current heights of one row. The slice aliases the field's
// storage and is only valid until the next Step; callers must not modify it.
func (f *HeightField) Row(row int) []float64 {
	base := row * f.width
	return f.curr[base : base+f.width : base+f.width]
}

// Snapshot copies the current state, row-major, into dst and returns it. dst
// is grown when it is too small.
func (f *HeightField) Snapshot(dst []float64) []float64 {
	if cap(dst) < len(f.curr) {
		dst = make([]float64, len(f.curr))
	}
	dst = dst[:len(f.curr)]
	copy(dst, f.curr)
	return dst
}

// interior reports whether a cell may be written by the solver.
func (f *HeightField) interior(row, col int) bool {
	return row > 0 && row < f.height-1 && col > 0 && col < f.width-1
}

// swap rotates the triple buffers so that next becomes current and current
// becomes previous.
func (f *HeightField) swap() {
	f.prev, f.curr, f.next = f.curr, f.next, f.prev
}
