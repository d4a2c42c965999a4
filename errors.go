package pyxel

import "errors"

var (
	// ErrArchive reports that the input is not a readable ZIP archive.
	ErrArchive = errors.New("pyxel: invalid archive")
	// ErrMissingMember reports that a required archive member is absent.
	ErrMissingMember = errors.New("pyxel: missing archive member")
	// ErrDeserialize reports that docData.json could not be decoded
	// into a document.
	ErrDeserialize = errors.New("pyxel: deserialize")
	// ErrImageDecode reports that an image member could not be decoded.
	ErrImageDecode = errors.New("pyxel: image decode")
	// ErrLimitExceeded reports that a configured limit was exceeded.
	ErrLimitExceeded = errors.New("pyxel: limit exceeded")
)
