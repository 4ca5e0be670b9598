package render

// Color is a linear RGB triple in [0,1].
type Color struct{ R, G, B float32 }

// Driver abstracts the LED transport (SPI strip, console preview, fake).
type Driver interface {
	Write([]Color) error
}

// Mix linearly interpolates between two colors.
func Mix(a, b Color, t float64) Color {
	f := float32(t)
	return Color{
		R: a.R + (b.R-a.R)*f,
		G: a.G + (b.G-a.G)*f,
		B: a.B + (b.B-a.B)*f,
	}
}

// Scale multiplies all channels by s.
func Scale(c Color, s float64) Color {
	f := float32(s)
	return Color{R: c.R * f, G: c.G * f, B: c.B * f}
}
