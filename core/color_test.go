package core

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGB_Scale(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 0}
	assert.Equal(t, c, c.Scale(1))
	assert.Equal(t, RGBBlack, c.Scale(0))
	assert.Equal(t, RGB{R: 100, G: 50}, c.Scale(0.5))
}

func TestRGB_Blend(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 0}
	assert.Equal(t, RGB{R: 100, G: 50, B: 100}, c.Blend(RGB{B: 200}, 0.5))
	assert.Equal(t, c, c.Blend(RGBBlack, 0))
}

func TestRGBFromColor(t *testing.T) {
	assert.Equal(t, RGB{R: 255, G: 220, B: 120}, RGBFromColor(color.RGBA{R: 255, G: 220, B: 120, A: 255}))
}
