package ui

import "image"

type Config struct {
	Rows, Cols      int // in number of tiles
	TileSize        int // in pixels
	MineProbability float64

	Title         string
	Width, Height int

	// Clickable region toggling flag mode, resized to the icon once it loads
	FlagButton   image.Rectangle
	FlagIconPath string

	Seed int64
}

func NewConfig() Config {
	return Config{
		Rows:            10,
		Cols:            15,
		TileSize:        50,
		MineProbability: 0.1,
		Title:           "Minesweeper",
		Width:           800,
		Height:          500,
		FlagButton:      image.Rect(760, 10, 792, 42),
		FlagIconPath:    "assets/mark.png",
	}
}

// GridBounds is the pixel area covered by tiles
func (config Config) GridBounds() image.Rectangle {
	return image.Rect(0, 0, config.Cols*config.TileSize, config.Rows*config.TileSize)
}
