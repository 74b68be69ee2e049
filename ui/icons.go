// Package ui provides the graphical user interface for Greeter.
// This file draws the tray icons.
package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/yllada/greeter/common"
)

// IconConfig defines the colors and size of a tray icon.
type IconConfig struct {
	Size        int
	FillColor   color.RGBA
	BorderColor color.RGBA
	SymbolColor color.RGBA
	// Dots draws "..." inside the bubble; otherwise a checkmark is drawn.
	Dots bool
}

// RunningIconConfig is the icon shown while greetings rotate.
func RunningIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   color.RGBA{53, 132, 228, 255}, // Blue
		BorderColor: color.RGBA{28, 113, 216, 255}, // Dark blue
		SymbolColor: color.RGBA{255, 255, 255, 255},
		Dots:        true,
	}
}

// FinishedIconConfig is the icon shown once the rotation has stopped.
func FinishedIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   color.RGBA{46, 194, 126, 255}, // Green
		BorderColor: color.RGBA{38, 162, 105, 255}, // Dark green
		SymbolColor: color.RGBA{255, 255, 255, 255},
		Dots:        false,
	}
}

// GenerateIcon renders a speech-bubble icon as PNG bytes.
func GenerateIcon(cfg IconConfig) []byte {
	img := image.NewRGBA(image.Rect(0, 0, cfg.Size, cfg.Size))

	drawBubble(img, cfg)
	if cfg.Dots {
		drawDots(img, cfg)
	} else {
		drawCheckmark(img, cfg)
	}

	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

// bubbleShape reports whether (x, y) lies in the bubble: an ellipse over
// the top three quarters plus a tail at the bottom left.
func bubbleShape(size int) func(x, y float64) bool {
	s := float64(size)
	cx, cy := s/2, s*0.42
	rx, ry := s/2-1, s*0.36

	return func(x, y float64) bool {
		dx, dy := (x-cx)/rx, (y-cy)/ry
		if dx*dx+dy*dy <= 1 {
			return true
		}
		// Tail: a small triangle under the left half.
		top, bottom := cy+ry*0.6, s-1
		if y < top || y > bottom {
			return false
		}
		rel := (y - top) / (bottom - top)
		left := s * 0.22
		right := s*0.45 - rel*s*0.2
		return x >= left && x <= right
	}
}

func drawBubble(img *image.RGBA, cfg IconConfig) {
	inside := bubbleShape(cfg.Size)

	for y := 0; y < cfg.Size; y++ {
		for x := 0; x < cfg.Size; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			if !inside(fx, fy) {
				continue
			}
			edge := !inside(fx-1, fy) || !inside(fx+1, fy) ||
				!inside(fx, fy-1) || !inside(fx, fy+1)
			if edge {
				img.Set(x, y, cfg.BorderColor)
			} else {
				img.Set(x, y, cfg.FillColor)
			}
		}
	}
}

func drawDots(img *image.RGBA, cfg IconConfig) {
	y := cfg.Size * 42 / 100
	for _, x := range []int{cfg.Size * 3 / 10, cfg.Size / 2, cfg.Size * 7 / 10} {
		for dy := -1; dy <= 0; dy++ {
			for dx := -1; dx <= 0; dx++ {
				img.Set(x+dx, y+dy, cfg.SymbolColor)
			}
		}
	}
}

func drawCheckmark(img *image.RGBA, cfg IconConfig) {
	s := cfg.Size
	// Short stroke down-right, then long stroke up-right.
	x0, y0 := s*3/10, s*4/10
	for i := 0; i <= s/7; i++ {
		img.Set(x0+i, y0+i, cfg.SymbolColor)
		img.Set(x0+i, y0+i+1, cfg.SymbolColor)
	}
	x1, y1 := x0+s/7, y0+s/7
	for i := 0; i <= s*3/10; i++ {
		if y1-i < 0 || x1+i >= s {
			break
		}
		img.Set(x1+i, y1-i, cfg.SymbolColor)
		img.Set(x1+i, y1-i+1, cfg.SymbolColor)
	}
}
