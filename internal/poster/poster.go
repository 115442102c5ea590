package poster

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/inkmatch/inkdeck/internal/carousel"
	"github.com/inkmatch/inkdeck/internal/theme"
)

// Poster geometry. Dimensions follow the desktop card aspect, scaled up for
// print-friendly output.
const (
	posterWidth  = 760
	posterHeight = 1040
	margin       = 64.0

	titleSize = 54.0
	bodySize  = 26.0
	ctaSize   = 30.0
)

// Card bundles everything needed to render one showcase card as a PNG.
type Card struct {
	Item    carousel.Item
	Palette theme.Palette
}

// Render draws the card and returns the image.
func Render(card Card) (image.Image, error) {
	dc := gg.NewContext(posterWidth, posterHeight)

	dc.SetHexColor(string(card.Palette.Background))
	dc.Clear()

	// Surface panel with a border inset.
	dc.SetHexColor(string(card.Palette.Surface))
	dc.DrawRoundedRectangle(margin/2, margin/2, posterWidth-margin, posterHeight-margin, 24)
	dc.Fill()

	dc.SetHexColor(string(card.Palette.Border))
	dc.SetLineWidth(3)
	dc.DrawRoundedRectangle(margin/2, margin/2, posterWidth-margin, posterHeight-margin, 24)
	dc.Stroke()

	titleFace, err := loadFace(gobold.TTF, titleSize)
	if err != nil {
		return nil, err
	}
	bodyFace, err := loadFace(goregular.TTF, bodySize)
	if err != nil {
		return nil, err
	}
	ctaFace, err := loadFace(gobold.TTF, ctaSize)
	if err != nil {
		return nil, err
	}

	contentWidth := float64(posterWidth) - 2*margin

	dc.SetFontFace(titleFace)
	dc.SetHexColor(string(card.Palette.Ink))
	dc.DrawStringWrapped(card.Item.Title, margin, margin*1.5, 0, 0, contentWidth, 1.15, gg.AlignLeft)

	dc.SetFontFace(bodyFace)
	dc.SetHexColor(string(card.Palette.Muted))
	dc.DrawStringWrapped(card.Item.Description, margin, posterHeight*0.42, 0, 0, contentWidth, 1.4, gg.AlignLeft)

	if card.Item.CTALabel != "" {
		drawCTAPill(dc, card, ctaFace)
	}

	return dc.Image(), nil
}

// Save renders the card and writes it to path as a PNG.
func Save(card Card, path string) error {
	img, err := Render(card)
	if err != nil {
		return err
	}

	dc := gg.NewContextForImage(img)
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save poster: %w", err)
	}
	return nil
}

func drawCTAPill(dc *gg.Context, card Card, face font.Face) {
	dc.SetFontFace(face)
	w, h := dc.MeasureString(card.Item.CTALabel)

	padX, padY := 36.0, 20.0
	pillW := w + 2*padX
	pillH := h + 2*padY
	x := margin
	y := float64(posterHeight) - margin - pillH

	dc.SetHexColor(string(card.Palette.Accent))
	dc.DrawRoundedRectangle(x, y, pillW, pillH, pillH/2)
	dc.Fill()

	dc.SetHexColor(string(card.Palette.Surface))
	dc.DrawString(card.Item.CTALabel, x+padX, y+padY+h*0.85)
}

func loadFace(ttf []byte, size float64) (font.Face, error) {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(parsed, &truetype.Options{Size: size}), nil
}
