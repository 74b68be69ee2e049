package ui

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yllada/greeter/common"
)

func TestGenerateIcon(t *testing.T) {
	tests := []struct {
		name string
		cfg  IconConfig
	}{
		{"running", RunningIconConfig()},
		{"finished", FinishedIconConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			img, err := png.Decode(bytes.NewReader(GenerateIcon(tt.cfg)))
			req.NoError(err)
			req.Equal(common.TrayIconSize, img.Bounds().Dx())
			req.Equal(common.TrayIconSize, img.Bounds().Dy())

			// The bubble center is filled, the top-left corner is transparent.
			c := common.TrayIconSize / 2
			_, _, _, a := img.At(c, c/2).RGBA()
			req.NotZero(a)
			_, _, _, a = img.At(0, 0).RGBA()
			req.Zero(a)
		})
	}
}

func TestIconsDiffer(t *testing.T) {
	require.NotEqual(t, GenerateIcon(RunningIconConfig()), GenerateIcon(FinishedIconConfig()))
}

func TestBubbleShape(t *testing.T) {
	inside := bubbleShape(22)

	require.True(t, inside(11, 9))
	require.False(t, inside(0.5, 0.5))
	require.False(t, inside(21.5, 21.5))
	require.True(t, inside(6, 18), "tail reaches below the ellipse")
}
