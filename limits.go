package pyxel

// Limits caps allocations driven by untrusted values inside an
// archive. A zero field means the corresponding default applies.
type Limits struct {
	MaxDocDataLen   uint64 // uncompressed size of docData.json
	MaxImageBytes   uint64 // uncompressed size of a single PNG member
	MaxLayers       int
	MaxTiles        int
	MaxPaletteSlots int
	MaxAnimations   int
}

func defaultLimits() Limits {
	return Limits{
		MaxDocDataLen:   16 << 20, // 16 MiB
		MaxImageBytes:   64 << 20, // 64 MiB
		MaxLayers:       1_000,
		MaxTiles:        10_000,
		MaxPaletteSlots: 4_096,
		MaxAnimations:   10_000,
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxDocDataLen == 0 {
		l.MaxDocDataLen = d.MaxDocDataLen
	}
	if l.MaxImageBytes == 0 {
		l.MaxImageBytes = d.MaxImageBytes
	}
	if l.MaxLayers == 0 {
		l.MaxLayers = d.MaxLayers
	}
	if l.MaxTiles == 0 {
		l.MaxTiles = d.MaxTiles
	}
	if l.MaxPaletteSlots == 0 {
		l.MaxPaletteSlots = d.MaxPaletteSlots
	}
	if l.MaxAnimations == 0 {
		l.MaxAnimations = d.MaxAnimations
	}
	return l
}
