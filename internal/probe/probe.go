// Package probe turns the height of a patch of water into sound. A driver
// samples the field once per tick with Sample, pushes the value into a Stream,
// and an audio player drains the Stream on its own goroutine.
package probe

import (
	"encoding/binary"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"

	"ripples/wave"
)

const (
	// FrameBytes is the size of one 16-bit stereo frame.
	FrameBytes = 4

	pcm16Max = 32767
	dcAlpha  = 0.001
)

// Sample returns the mean current height of the square neighbourhood of the
// given radius around (col, row), clipped to the grid. It returns 0 when the
// neighbourhood misses the grid.
func Sample(f *wave.HeightField, col, row, radius int) float64 {
	c0, c1 := max(col-radius, 0), min(col+radius, f.Width()-1)
	r0, r1 := max(row-radius, 0), min(row+radius, f.Height()-1)
	if c0 > c1 || r0 > r1 {
		return 0
	}
	var sum float64
	for r := r0; r <= r1; r++ {
		sum += floats.Sum(f.Row(r)[c0 : c1+1])
	}
	return sum / float64((c1-c0+1)*(r1-r0+1))
}

// Stream is an endless PCM16 stereo stream playing the most recently pushed
// level. Each Read ramps linearly from the level it ended on last time to the
// current one, so tick-rate updates do not click.
type Stream struct {
	mu     sync.Mutex
	dc     float64
	target float64
	out    float64
}

func NewStream() *Stream {
	return &Stream{}
}

// Push clamps v to [-1,1], removes the slowly drifting DC component and makes
// the result the level the next Read ramps to. NaN counts as silence.
func (s *Stream) Push(v float64) {
	if math.IsNaN(v) {
		v = 0
	}
	v = math.Max(-1, math.Min(1, v))
	s.mu.Lock()
	s.dc += dcAlpha * (v - s.dc)
	s.target = v - s.dc
	s.mu.Unlock()
}

// Level returns the DC-blocked level the stream is heading for.
func (s *Stream) Level() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

// Read fills p with whole frames only; a trailing partial frame is left
// untouched and excluded from n.
func (s *Stream) Read(p []byte) (int, error) {
	n := len(p) - len(p)%FrameBytes
	if n == 0 {
		return 0, nil
	}
	s.mu.Lock()
	from, to := s.out, s.target
	s.out = to
	s.mu.Unlock()

	frames := n / FrameBytes
	for i := 0; i < frames; i++ {
		v := from + (to-from)*float64(i+1)/float64(frames)
		pcm := uint16(int16(math.Round(v * pcm16Max)))
		binary.LittleEndian.PutUint16(p[i*FrameBytes:], pcm)
		binary.LittleEndian.PutUint16(p[i*FrameBytes+2:], pcm)
	}
	return n, nil
}

func (s *Stream) Close() error {
	return nil
}
