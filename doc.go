// Package pyxel reads PyxelEdit documents.
//
// A .pyxel file is a ZIP archive containing a docData.json metadata
// member plus one PNG member per canvas layer ("layer0.png",
// "layer1.png", ...) and per tileset tile ("tile0.png", ...). This
// package opens the archive, decodes the JSON into a typed [Document]
// tree, then fetches the image members declared by the document and
// attaches them to their layers and tiles.
//
// # Basic Usage
//
// To load a document from disk:
//
//	doc, err := pyxel.Open("drawing.pyxel")
//
// [Load] and [LoadFromMemory] accept an io.Reader or a byte slice
// instead; all three produce identical documents for identical bytes.
//
// # Image Payloads
//
// By default layer and tile images are attached as raw PNG bytes. Pass
// [WithImageDecoder] to have the loader decode each member into an
// image.Image as it is attached:
//
//	doc, err := pyxel.Open("drawing.pyxel", pyxel.WithImageDecoder(pyxel.PNGDecoder{}))
//
// # Security Considerations
//
// Declared counts and member sizes inside an archive are untrusted.
// Configurable [Limits] cap the docData.json size, individual image
// member sizes, and layer/tile/palette/animation counts so that a
// hostile archive cannot force oversized allocations.
//
// Loading never writes; this package does not edit or re-serialize
// documents. Only documents produced by PyxelEdit v0.4.8 are
// officially supported.
package pyxel
