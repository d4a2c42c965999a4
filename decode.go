package pyxel

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	json "github.com/goccy/go-json"
)

// decode.go binds the external docData.json field names to the entity
// tree. Every entity decodes through an auxiliary struct of pointer
// fields so that a missing required field is reported by entity and
// field name instead of surfacing as a zero value. Unknown fields are
// ignored for forward compatibility.

func errMissing(entity, field string) error {
	return fmt.Errorf("%w: %s: missing field %q", ErrDeserialize, entity, field)
}

func errEntity(entity string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrDeserialize, entity, err)
}

func decodeDocument(data []byte, limits Limits) (*Document, error) {
	var raw struct {
		Name       *string                    `json:"name"`
		Version    *string                    `json:"version"`
		Palette    json.RawMessage            `json:"palette"`
		Canvas     json.RawMessage            `json:"canvas"`
		Tileset    json.RawMessage            `json:"tileset"`
		Animations map[string]json.RawMessage `json:"animations"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errEntity("document", err)
	}
	switch {
	case raw.Name == nil:
		return nil, errMissing("document", "name")
	case raw.Version == nil:
		return nil, errMissing("document", "version")
	case raw.Palette == nil:
		return nil, errMissing("document", "palette")
	case raw.Canvas == nil:
		return nil, errMissing("document", "canvas")
	case raw.Tileset == nil:
		return nil, errMissing("document", "tileset")
	case raw.Animations == nil:
		return nil, errMissing("document", "animations")
	}

	version, err := semver.NewVersion(*raw.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: document: version %q: %v", ErrDeserialize, *raw.Version, err)
	}

	palette, err := decodePalette(raw.Palette, limits)
	if err != nil {
		return nil, err
	}
	canvas, err := decodeCanvas(raw.Canvas, limits)
	if err != nil {
		return nil, err
	}
	tileset, err := decodeTileset(raw.Tileset, limits)
	if err != nil {
		return nil, err
	}

	if len(raw.Animations) > limits.MaxAnimations {
		return nil, fmt.Errorf("%w: %d animations exceed %d", ErrLimitExceeded, len(raw.Animations), limits.MaxAnimations)
	}
	byIndex := make(map[string]Animation, len(raw.Animations))
	for key, msg := range raw.Animations {
		anim, err := decodeAnimation(msg)
		if err != nil {
			return nil, err
		}
		byIndex[key] = anim
	}
	animations, err := denseSlice("animations", byIndex)
	if err != nil {
		return nil, err
	}

	return &Document{
		Name:       *raw.Name,
		Version:    version,
		Palette:    palette,
		Canvas:     canvas,
		Tileset:    tileset,
		Animations: animations,
	}, nil
}

func decodePalette(data []byte, limits Limits) (Palette, error) {
	var raw struct {
		Colors    map[string]string `json:"colors"`
		Width     *uint8            `json:"width"`
		Height    *uint8            `json:"height"`
		NumColors *int              `json:"numColors"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Palette{}, errEntity("palette", err)
	}
	switch {
	case raw.Colors == nil:
		return Palette{}, errMissing("palette", "colors")
	case raw.Width == nil:
		return Palette{}, errMissing("palette", "width")
	case raw.Height == nil:
		return Palette{}, errMissing("palette", "height")
	case raw.NumColors == nil:
		return Palette{}, errMissing("palette", "numColors")
	}

	decoded := make(map[string]Color, len(raw.Colors))
	for key, hexStr := range raw.Colors {
		c, err := colorFromHex(hexStr)
		if err != nil {
			return Palette{}, fmt.Errorf("palette slot %s: %w", key, err)
		}
		decoded[key] = c
	}
	// Palette slots may legitimately be empty, so gaps stay nil.
	colors, err := sparseSlice("palette colors", decoded, limits.MaxPaletteSlots)
	if err != nil {
		return Palette{}, err
	}

	return Palette{
		Colors:    colors,
		Width:     *raw.Width,
		Height:    *raw.Height,
		NumColors: *raw.NumColors,
	}, nil
}

func decodeCanvas(data []byte, limits Limits) (Canvas, error) {
	var raw struct {
		Layers     map[string]json.RawMessage `json:"layers"`
		Width      *int32                     `json:"width"`
		Height     *int32                     `json:"height"`
		TileWidth  *uint16                    `json:"tileWidth"`
		TileHeight *uint16                    `json:"tileHeight"`
		NumLayers  *int                       `json:"numLayers"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Canvas{}, errEntity("canvas", err)
	}
	switch {
	case raw.Layers == nil:
		return Canvas{}, errMissing("canvas", "layers")
	case raw.Width == nil:
		return Canvas{}, errMissing("canvas", "width")
	case raw.Height == nil:
		return Canvas{}, errMissing("canvas", "height")
	case raw.TileWidth == nil:
		return Canvas{}, errMissing("canvas", "tileWidth")
	case raw.TileHeight == nil:
		return Canvas{}, errMissing("canvas", "tileHeight")
	case raw.NumLayers == nil:
		return Canvas{}, errMissing("canvas", "numLayers")
	}

	if len(raw.Layers) > limits.MaxLayers {
		return Canvas{}, fmt.Errorf("%w: %d layers exceed %d", ErrLimitExceeded, len(raw.Layers), limits.MaxLayers)
	}
	byIndex := make(map[string]Layer, len(raw.Layers))
	for key, msg := range raw.Layers {
		layer, err := decodeLayer(msg)
		if err != nil {
			return Canvas{}, err
		}
		byIndex[key] = layer
	}
	layers, err := denseSlice("canvas layers", byIndex)
	if err != nil {
		return Canvas{}, err
	}
	// The declared count drives image fetching; a disagreement with the
	// layer table means the document is corrupt.
	if *raw.NumLayers != len(layers) {
		return Canvas{}, fmt.Errorf("%w: canvas: numLayers %d but %d layers present", ErrDeserialize, *raw.NumLayers, len(layers))
	}

	return Canvas{
		Layers:     layers,
		Width:      *raw.Width,
		Height:     *raw.Height,
		TileWidth:  *raw.TileWidth,
		TileHeight: *raw.TileHeight,
		NumLayers:  *raw.NumLayers,
	}, nil
}

func decodeLayer(data []byte) (Layer, error) {
	var raw struct {
		Alpha     *uint8                     `json:"alpha"`
		BlendMode *BlendMode                 `json:"blendMode"`
		Hidden    *bool                      `json:"hidden"`
		Muted     *bool                      `json:"muted"`
		Soloed    *bool                      `json:"soloed"`
		Name      *string                    `json:"name"`
		TileRefs  map[string]json.RawMessage `json:"tileRefs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Layer{}, errEntity("layer", err)
	}
	switch {
	case raw.Alpha == nil:
		return Layer{}, errMissing("layer", "alpha")
	case raw.BlendMode == nil:
		return Layer{}, errMissing("layer", "blendMode")
	case raw.Hidden == nil:
		return Layer{}, errMissing("layer", "hidden")
	case raw.Muted == nil:
		return Layer{}, errMissing("layer", "muted")
	case raw.Soloed == nil:
		return Layer{}, errMissing("layer", "soloed")
	case raw.Name == nil:
		return Layer{}, errMissing("layer", "name")
	case raw.TileRefs == nil:
		return Layer{}, errMissing("layer", "tileRefs")
	}

	tileRefs := make(map[int]TileRef, len(raw.TileRefs))
	for key, msg := range raw.TileRefs {
		pos, err := parseSlotKey("layer tileRefs", key)
		if err != nil {
			return Layer{}, err
		}
		ref, err := decodeTileRef(msg)
		if err != nil {
			return Layer{}, err
		}
		tileRefs[pos] = ref
	}

	return Layer{
		Alpha:     *raw.Alpha,
		BlendMode: *raw.BlendMode,
		Hidden:    *raw.Hidden,
		Muted:     *raw.Muted,
		Soloed:    *raw.Soloed,
		Name:      *raw.Name,
		TileRefs:  tileRefs,
	}, nil
}

func decodeTileRef(data []byte) (TileRef, error) {
	var raw struct {
		Index *int    `json:"index"`
		Rot   *uint64 `json:"rot"`
		FlipX *bool   `json:"flipX"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return TileRef{}, errEntity("tileRef", err)
	}
	switch {
	case raw.Index == nil:
		return TileRef{}, errMissing("tileRef", "index")
	case raw.Rot == nil:
		return TileRef{}, errMissing("tileRef", "rot")
	case raw.FlipX == nil:
		return TileRef{}, errMissing("tileRef", "flipX")
	}
	if *raw.Index < 0 {
		return TileRef{}, fmt.Errorf("%w: tileRef: negative index %d", ErrDeserialize, *raw.Index)
	}
	rot, err := degreesFromQuadrant(*raw.Rot)
	if err != nil {
		return TileRef{}, err
	}
	return TileRef{Index: *raw.Index, Rot: rot, FlipX: *raw.FlipX}, nil
}

func decodeTileset(data []byte, limits Limits) (Tileset, error) {
	var raw struct {
		FixedWidth *bool   `json:"fixedWidth"`
		NumTiles   *int    `json:"numTiles"`
		TileWidth  *uint16 `json:"tileWidth"`
		TileHeight *uint16 `json:"tileHeight"`
		TilesWide  *uint8  `json:"tilesWide"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Tileset{}, errEntity("tileset", err)
	}
	switch {
	case raw.FixedWidth == nil:
		return Tileset{}, errMissing("tileset", "fixedWidth")
	case raw.NumTiles == nil:
		return Tileset{}, errMissing("tileset", "numTiles")
	case raw.TileWidth == nil:
		return Tileset{}, errMissing("tileset", "tileWidth")
	case raw.TileHeight == nil:
		return Tileset{}, errMissing("tileset", "tileHeight")
	case raw.TilesWide == nil:
		return Tileset{}, errMissing("tileset", "tilesWide")
	}
	if *raw.NumTiles < 0 {
		return Tileset{}, fmt.Errorf("%w: tileset: negative numTiles %d", ErrDeserialize, *raw.NumTiles)
	}
	if *raw.NumTiles > limits.MaxTiles {
		return Tileset{}, fmt.Errorf("%w: %d tiles exceed %d", ErrLimitExceeded, *raw.NumTiles, limits.MaxTiles)
	}
	return Tileset{
		FixedWidth: *raw.FixedWidth,
		NumTiles:   *raw.NumTiles,
		TileWidth:  *raw.TileWidth,
		TileHeight: *raw.TileHeight,
		TilesWide:  *raw.TilesWide,
	}, nil
}

func decodeAnimation(data []byte) (Animation, error) {
	var raw struct {
		BaseTile                 *int      `json:"baseTile"`
		FrameDuration            *uint64   `json:"frameDuration"`
		FrameDurationMultipliers *[]uint64 `json:"frameDurationMultipliers"`
		Length                   *int      `json:"length"`
		Name                     *string   `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Animation{}, errEntity("animation", err)
	}
	switch {
	case raw.BaseTile == nil:
		return Animation{}, errMissing("animation", "baseTile")
	case raw.FrameDuration == nil:
		return Animation{}, errMissing("animation", "frameDuration")
	case raw.FrameDurationMultipliers == nil:
		return Animation{}, errMissing("animation", "frameDurationMultipliers")
	case raw.Length == nil:
		return Animation{}, errMissing("animation", "length")
	case raw.Name == nil:
		return Animation{}, errMissing("animation", "name")
	}
	return Animation{
		BaseTile:                 *raw.BaseTile,
		FrameDuration:            durationFromMillis(*raw.FrameDuration),
		FrameDurationMultipliers: multipliersFromPercents(*raw.FrameDurationMultipliers),
		Length:                   *raw.Length,
		Name:                     *raw.Name,
	}, nil
}
