package pyxel

import (
	"io"
	"os"
)

// LoadFromMemory loads a PyxelEdit document from a byte slice.
func LoadFromMemory(buf []byte, opts ...LoadOption) (*Document, error) {
	cfg := loadConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return loadArchive(buf, cfg)
}

// Open loads the PyxelEdit document at the given path.
func Open(path string, opts ...LoadOption) (*Document, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadFromMemory(buf, opts...)
}

// Load loads a PyxelEdit document from a reader. The archive is read
// fully into memory; loading does not stream.
func Load(r io.Reader, opts ...LoadOption) (*Document, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return LoadFromMemory(buf, opts...)
}
