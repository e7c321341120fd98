package lifting

import (
	"bytes"
	"testing"

	"github.com/2beens/fitdash/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestRenderTrendPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTrendPNG(&buf, squatTrend(), config.DefaultPalette()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature))
}

func TestRenderTrendPNG_Flat(t *testing.T) {
	flat := newExerciseTrend("Squat", []TrendPoint{
		{Date: day("2024-01-01"), Label: Label1RM, Value: 100},
		{Date: day("2024-01-08"), Label: Label1RM, Value: 100},
	})
	var buf bytes.Buffer
	require.NoError(t, RenderTrendPNG(&buf, flat, config.DefaultPalette()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature))
}

func TestRenderTrendPNG_TooFewPoints(t *testing.T) {
	var buf bytes.Buffer
	err := RenderTrendPNG(&buf, ExerciseTrend{Exercise: "Squat"}, config.DefaultPalette())
	assert.ErrorIs(t, err, errTooFewPoints)
}

func TestParseColor(t *testing.T) {
	fallback := drawing.ColorBlack
	assert.Equal(t, drawing.Color{R: 100, G: 217, B: 236, A: 255}, parseColor("rgb(100, 217, 236)", fallback))
	assert.Equal(t, drawing.Color{R: 0x64, G: 0xd9, B: 0xec, A: 255}, parseColor("#64D9EC", fallback))
	assert.Equal(t, fallback, parseColor("teal", fallback))
	assert.Equal(t, fallback, parseColor("rgb(1,2)", fallback))
}
