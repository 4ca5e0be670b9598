package led

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spitest"
	"periph.io/x/devices/v3/nrzled"

	"github.com/coreman2200/funtimes-ringdial/internal/render"
)

var TestChannelRounding = []struct {
	In     float32
	Expect uint8
}{
	{0, 0x00},
	{-0.5, 0x00},
	{1, 0xFF},
	{1.5, 0xFF},
	{0.5, 0x80},
	{0.25, 0x40},
}

func TestChannelByte(t *testing.T) {
	for _, v := range TestChannelRounding {
		assert.Equal(t, v.Expect, channelByte(v.In), "channelByte(%v)", v.In)
	}
}

func TestFrameImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	FrameImage(img, []render.Color{
		{R: 1, G: 0, B: 0},
		{R: 0, G: 0.5, B: 0},
		{R: 0, G: 0, B: 1},
	})

	px := img.NRGBAAt(0, 0)
	assert.Equal(t, uint8(0xFF), px.R)
	assert.Equal(t, uint8(0x00), px.G)

	px = img.NRGBAAt(1, 0)
	assert.Equal(t, uint8(0x80), px.G)

	px = img.NRGBAAt(2, 0)
	assert.Equal(t, uint8(0xFF), px.B)
	assert.Equal(t, uint8(0xFF), px.A)
}

func TestStripWriteRecordsFrame(t *testing.T) {
	buf := bytes.Buffer{}
	o := nrzled.Opts{NumPixels: 4, Channels: 3, Freq: 2500 * physic.KiloHertz}
	d, err := nrzled.NewSPI(spitest.NewRecordRaw(&buf), &o)
	if err != nil {
		t.Fatal(err)
	}
	if got, expected := d.String(), "nrzled{recordraw}"; got != expected {
		t.Fatalf("\nGot:  %s\nWant: %s\n", got, expected)
	}

	s := &Strip{drawer: d, img: image.NewNRGBA(image.Rect(0, 0, 4, 1)), Spi: true}
	frame := make([]render.Color, 4)
	frame[0] = render.Color{R: 1, G: 1, B: 1}
	if err := s.Write(frame); err != nil {
		t.Fatalf("write: %v", err)
	}
	assert.NotZero(t, buf.Len(), "frame should reach the SPI port")
}
