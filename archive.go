package pyxel

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

const docDataName = "docData.json"

// loadArchive decodes a whole .pyxel archive held in memory:
//  1. Open the ZIP directory.
//  2. Read docData.json and decode it into the document tree.
//  3. Fetch "layer{i}.png" for every canvas layer and attach it.
//  4. Fetch "tile{i}.png" for every declared tileset tile and attach it.
//
// Any failure aborts the load; there is no partial document.
func loadArchive(data []byte, cfg loadConfig) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchive, err)
	}
	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})

	docData, err := readMember(zr, docDataName, cfg.limits.MaxDocDataLen)
	if err != nil {
		return nil, err
	}
	doc, err := decodeDocument(docData, cfg.limits)
	if err != nil {
		return nil, err
	}

	for i := range doc.Canvas.Layers {
		name := fmt.Sprintf("layer%d.png", i)
		b, err := readMember(zr, name, cfg.limits.MaxImageBytes)
		if err != nil {
			return nil, err
		}
		img, err := cfg.attach(name, b)
		if err != nil {
			return nil, err
		}
		doc.Canvas.Layers[i].Image = img
	}

	doc.Tileset.Images = make([]Image, 0, doc.Tileset.NumTiles)
	for i := 0; i < doc.Tileset.NumTiles; i++ {
		name := fmt.Sprintf("tile%d.png", i)
		b, err := readMember(zr, name, cfg.limits.MaxImageBytes)
		if err != nil {
			return nil, err
		}
		img, err := cfg.attach(name, b)
		if err != nil {
			return nil, err
		}
		doc.Tileset.Images = append(doc.Tileset.Images, img)
	}

	return doc, nil
}

// readMember reads a named archive member in full, capped at maxBytes.
// The size recorded in the ZIP directory is untrusted, so the cap is
// enforced on the actual decompressed stream as well.
func readMember(zr *zip.Reader, name string, maxBytes uint64) ([]byte, error) {
	var zf *zip.File
	for _, f := range zr.File {
		if f.Name == name {
			zf = f
			break
		}
	}
	if zf == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingMember, name)
	}
	if zf.UncompressedSize64 > maxBytes {
		return nil, fmt.Errorf("%w: member %q declares %d bytes", ErrLimitExceeded, name, zf.UncompressedSize64)
	}
	rc, err := zf.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: member %q: %v", ErrArchive, name, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(io.LimitReader(rc, int64(maxBytes)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: member %q: %v", ErrArchive, name, err)
	}
	if uint64(len(b)) > maxBytes {
		return nil, fmt.Errorf("%w: member %q larger than %d bytes", ErrLimitExceeded, name, maxBytes)
	}
	return b, nil
}

// attach wraps member bytes as the configured image payload kind.
func (c loadConfig) attach(name string, data []byte) (Image, error) {
	if c.decoder == nil {
		return RawImage{data: data}, nil
	}
	img, err := c.decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: member %q: %v", ErrImageDecode, name, err)
	}
	return DecodedImage{data: data, img: img}, nil
}
