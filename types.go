package pyxel

import (
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"
	json "github.com/goccy/go-json"
)

// Color is an RGBA color decoded from the document palette.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Palette is the color palette of a document. Colors are ordered by
// palette slot; a nil entry is an empty slot. Width and Height describe
// the palette grid in the PyxelEdit UI. NumColors is the count declared
// by the document and is not validated against len(Colors).
type Palette struct {
	Colors    []*Color
	Width     uint8
	Height    uint8
	NumColors int
}

// TileRef places a tileset tile onto a layer grid cell.
type TileRef struct {
	// Index of the tile in the tileset.
	Index int
	// Rot is the tile rotation in degrees: 0, 90, 180 or 270.
	Rot float64
	// FlipX reports whether the tile is flipped horizontally.
	FlipX bool
}

// BlendMode is the pixel-compositing operation used when flattening a
// layer onto the canvas beneath it.
type BlendMode string

const (
	BlendNormal     BlendMode = "normal"
	BlendMultiply   BlendMode = "multiply"
	BlendAdd        BlendMode = "add"
	BlendDifference BlendMode = "difference"
	BlendDarken     BlendMode = "darken"
	BlendLighten    BlendMode = "lighten"
	BlendHardlight  BlendMode = "hardlight"
	BlendInvert     BlendMode = "invert"
	BlendOverlay    BlendMode = "overlay"
	BlendScreen     BlendMode = "screen"
	BlendSubtract   BlendMode = "subtract"
)

// UnmarshalJSON decodes a blend mode tag, rejecting tags outside the
// closed set rather than defaulting.
func (b *BlendMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: blend mode: %v", ErrDeserialize, err)
	}
	switch BlendMode(s) {
	case BlendNormal, BlendMultiply, BlendAdd, BlendDifference, BlendDarken,
		BlendLighten, BlendHardlight, BlendInvert, BlendOverlay, BlendScreen,
		BlendSubtract:
		*b = BlendMode(s)
		return nil
	}
	return fmt.Errorf("%w: unknown blend mode %q", ErrDeserialize, s)
}

// Layer is a single canvas layer. TileRefs maps tile-grid positions to
// tile placements; positions without a placement are absent. Image is
// attached by the loader from the layer's PNG archive member.
type Layer struct {
	Alpha     uint8
	BlendMode BlendMode
	Hidden    bool
	Muted     bool
	Soloed    bool
	Name      string
	TileRefs  map[int]TileRef
	Image     Image
}

// Canvas is the drawing surface of a document. Width and Height are in
// pixels; TileWidth and TileHeight give the tile grid cell size.
// NumLayers is the count declared by the document; the loader requires
// it to equal len(Layers).
type Canvas struct {
	Layers     []Layer
	Width      int32
	Height     int32
	TileWidth  uint16
	TileHeight uint16
	NumLayers  int
}

// Tileset holds the document's tiles. Images is index-aligned with the
// tile numbering and is attached by the loader, one entry per declared
// tile.
type Tileset struct {
	FixedWidth bool
	NumTiles   int
	TileWidth  uint16
	TileHeight uint16
	TilesWide  uint8
	Images     []Image
}

// Animation is a named frame sequence over consecutive tileset tiles
// starting at BaseTile. Each frame lasts FrameDuration scaled by the
// matching entry of FrameDurationMultipliers.
type Animation struct {
	BaseTile                 int
	FrameDuration            time.Duration
	FrameDurationMultipliers []float64
	Length                   int
	Name                     string
}

// Document is the root of a parsed PyxelEdit file.
type Document struct {
	Name       string
	Version    *semver.Version
	Palette    Palette
	Canvas     Canvas
	Tileset    Tileset
	Animations []Animation
}
