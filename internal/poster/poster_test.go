package poster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmatch/inkdeck/internal/carousel"
	"github.com/inkmatch/inkdeck/internal/theme"
)

func sampleCard() Card {
	return Card{
		Item: carousel.Item{
			ID:          "flash-drop",
			Title:       "Friday Flash Drop",
			Description: "Limited flash sheets from resident artists. First come, first inked.",
			CTALabel:    "Book now",
		},
		Palette: theme.PaletteFor(theme.ModeDark),
	}
}

func TestRenderProducesPosterSizedImage(t *testing.T) {
	img, err := Render(sampleCard())
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, posterWidth, bounds.Dx())
	assert.Equal(t, posterHeight, bounds.Dy())
}

func TestRenderWithoutCTA(t *testing.T) {
	card := sampleCard()
	card.Item.CTALabel = ""

	_, err := Render(card)
	assert.NoError(t, err)
}

func TestSaveWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poster.png")
	require.NoError(t, Save(sampleCard(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
