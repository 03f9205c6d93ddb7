package store

import (
	"context"
	"io"
)

// Asset categories map to parallel namespaces under the uploads root.
// Each endpoint family historically wrote to its own directory; the
// names are preserved so existing public URLs keep resolving.
const (
	CategoryVideos       = "videos"
	CategoryImages       = "images"
	CategoryRawImages    = "raw-images"
	CategorySimpleImages = "simple-images"
)

// Asset is a persisted upload: the generated filename, the public path
// it is served from, and its size on disk.
type Asset struct {
	Filename   string `json:"filename"`
	PublicPath string `json:"path"`
	Size       int64  `json:"size"`
}

// AssetStore persists validated upload payloads. Implementations must
// never overwrite: every Save produces a distinct filename.
type AssetStore interface {
	Save(ctx context.Context, category, originalFilename string, data io.Reader) (*Asset, error)
	List(ctx context.Context, category string) ([]Asset, error)
	Delete(ctx context.Context, category, filename string) error
}
