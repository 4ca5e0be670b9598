package led

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-ringdial/internal/render"
)

// Strip drives a ring of NRZ (WS2812-style) LEDs over SPI. When no SPI port
// is available it falls back to a console preview so the dial can be run on
// a dev machine.
type Strip struct {
	drawer display.Drawer
	img    *image.NRGBA
	Spi    bool
}

// Open initializes the periph host and opens the strip on the given SPI
// device ("" picks the first port). speedKHz is the strip data rate.
func Open(dev string, speedKHz int, pixels int) (*Strip, error) {
	if pixels <= 0 {
		return nil, fmt.Errorf("led: invalid pixel count %d", pixels)
	}
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	s := &Strip{img: image.NewNRGBA(image.Rect(0, 0, pixels, 1))}

	port, err := spireg.Open(dev)
	if err != nil {
		fmt.Printf("No SPI port found, previewing on the console:\n")
		s.drawer = screen.New(pixels)
		return s, nil
	}

	if speedKHz <= 0 {
		speedKHz = 2500
	}
	opts := nrzled.Opts{
		NumPixels: pixels,
		Channels:  3,
		Freq:      physic.Frequency(speedKHz) * physic.KiloHertz,
	}
	d, err := nrzled.NewSPI(port, &opts)
	if err != nil {
		return nil, err
	}
	d.Halt()
	s.drawer = d
	s.Spi = true
	return s, nil
}

// Write implements render.Driver.
func (s *Strip) Write(buf []render.Color) error {
	FrameImage(s.img, buf)
	return s.drawer.Draw(s.drawer.Bounds(), s.img, image.Point{})
}

// Close blanks the strip.
func (s *Strip) Close() error {
	return s.drawer.Halt()
}

// FrameImage packs a frame into a 1-pixel-tall NRGBA image, the form the
// periph drawers consume.
func FrameImage(img *image.NRGBA, buf []render.Color) {
	for i := range buf {
		img.SetNRGBA(i, 0, color.NRGBA{
			R: channelByte(buf[i].R),
			G: channelByte(buf[i].G),
			B: channelByte(buf[i].B),
			A: 0xFF,
		})
	}
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}
