package pyxel

type loadConfig struct {
	limits  Limits
	decoder ImageDecoder
}

// LoadOption customizes a load.
type LoadOption func(*loadConfig)

// WithLimits sets custom size and count limits. Zero fields keep their
// defaults.
func WithLimits(l Limits) LoadOption {
	return func(c *loadConfig) { c.limits = l }
}

// WithImageDecoder switches the loader into decoded-image mode: every
// layer and tile member is passed through dec and attached as a
// [DecodedImage]. Without this option members are attached as
// [RawImage] values.
func WithImageDecoder(dec ImageDecoder) LoadOption {
	return func(c *loadConfig) { c.decoder = dec }
}
