package view

// RGB is a linear colour with channels in [0,1].
type RGB struct {
	R, G, B float32
}

// HexRGB expands a 0xRRGGBB literal.
func HexRGB(hex uint32) RGB {
	return RGB{
		R: float32((hex>>16)&0xff) / 255,
		G: float32((hex>>8)&0xff) / 255,
		B: float32(hex&0xff) / 255,
	}
}

// Scale multiplies every channel by k.
func (c RGB) Scale(k float32) RGB {
	return RGB{c.R * k, c.G * k, c.B * k}
}

// Mul multiplies two colours channel by channel.
func (c RGB) Mul(o RGB) RGB {
	return RGB{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Add sums two colours.
func (c RGB) Add(o RGB) RGB {
	return RGB{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Clamp limits every channel to [0,1].
func (c RGB) Clamp() RGB {
	return RGB{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// Bytes converts the colour to 8-bit channels.
func (c RGB) Bytes() (r, g, b byte) {
	c = c.Clamp()
	return byte(c.R*255 + 0.5), byte(c.G*255 + 0.5), byte(c.B*255 + 0.5)
}

// WaterColor maps a height to the point-grid palette: deep blue for troughs
// rising to white for crests. Heights outside [-1,1] saturate.
func WaterColor(h float64) RGB {
	n := clampFloat(h, -1, 1)
	t := float32((n + 1) / 2)
	return RGB{
		R: 0.1 + 0.9*t,
		G: 0.3 + 0.7*t,
		B: 0.6 + 0.4*t,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampFloat constrains v to lie within the inclusive [min, max] range.
func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
