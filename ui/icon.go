package ui

import (
	"fmt"
	"image"
	"os"

	_ "image/png"

	"github.com/faiface/pixel"
)

// LoadIcon decodes the image at path. The game cannot show flags without
// it, so callers treat any error as fatal.
func LoadIcon(path string) (pixel.Picture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load icon: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", path, err)
	}
	return pixel.PictureDataFromImage(img), nil
}

// FlagButtonFor sizes the flag-mode button to the icon, keeping its top-left corner
func FlagButtonFor(button image.Rectangle, icon pixel.Picture) image.Rectangle {
	size := icon.Bounds().Size()
	return image.Rectangle{
		Min: button.Min,
		Max: button.Min.Add(image.Pt(int(size.X), int(size.Y))),
	}
}
