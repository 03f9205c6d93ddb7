package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cedarbrook-wellness/content-service/internal/upload"
	"github.com/cedarbrook-wellness/content-service/internal/upload/sniff"
	"github.com/cedarbrook-wellness/content-service/internal/upload/store"
)

// Options parameterize one upload route. The original site grew a
// separate endpoint per combination; here the combination is data.
type Options struct {
	// MaxBytes is the hard ceiling, checked against Content-Length
	// before any I/O and re-checked against the assembled payload.
	MaxBytes int64
	// Category selects the destination namespace in the asset store.
	Category string
	// Timeout bounds the whole request wall-clock. Zero means the
	// caller's context governs.
	Timeout time.Duration
	// StrictVideo enforces the accepted video MIME types on the
	// declared Content-Type. Image routes leave this off: their type
	// check is magic-byte based and advisory.
	StrictVideo bool
}

// Pipeline validates and persists upload payloads for one route.
type Pipeline struct {
	assets store.AssetStore
	opts   Options
}

func New(assets store.AssetStore, opts Options) *Pipeline {
	return &Pipeline{assets: assets, opts: opts}
}

// Context applies the route's wall-clock budget.
func (p *Pipeline) Context(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.opts.Timeout)
}

// CheckDeclaredSize fails fast on the declared Content-Length, before
// any bytes are read or written.
func (p *Pipeline) CheckDeclaredSize(contentLength int64) error {
	if p.opts.MaxBytes > 0 && contentLength > p.opts.MaxBytes {
		return upload.NewError(upload.CodePayloadTooLarge,
			fmt.Sprintf("declared size %d exceeds limit of %d bytes", contentLength, p.opts.MaxBytes))
	}
	return nil
}

// StoreStream persists a payload without buffering it whole. The
// ceiling is re-enforced on the actual byte count as the stream is
// copied.
func (p *Pipeline) StoreStream(ctx context.Context, filename, declaredType string, data io.Reader) (*store.Asset, error) {
	if p.opts.StrictVideo && !sniff.AllowedVideoType(declaredType) {
		return nil, upload.NewError(upload.CodeUnsupportedType,
			fmt.Sprintf("content type %q is not an accepted video format", declaredType))
	}

	if p.opts.MaxBytes > 0 {
		data = io.LimitReader(data, p.opts.MaxBytes+1)
	}

	asset, err := p.assets.Save(ctx, p.opts.Category, filename, data)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, upload.WrapError(upload.CodeUploadTimeout, "upload exceeded the time budget", ctx.Err())
		}
		return nil, err
	}

	if p.opts.MaxBytes > 0 && asset.Size > p.opts.MaxBytes {
		// The declared length lied; discard what was written.
		if delErr := p.assets.Delete(ctx, p.opts.Category, asset.Filename); delErr != nil {
			slog.Warn("Failed to remove oversized payload",
				slog.String("filename", asset.Filename),
				slog.String("error", delErr.Error()))
		}
		return nil, upload.NewError(upload.CodePayloadTooLarge,
			fmt.Sprintf("payload exceeds limit of %d bytes", p.opts.MaxBytes))
	}

	return asset, nil
}

// StoreBytes persists a fully assembled payload and reports the type
// its magic bytes identify. An unrecognized image type is tolerated,
// logged, and reported as whatever the general detector sees.
func (p *Pipeline) StoreBytes(ctx context.Context, filename string, data []byte) (*store.Asset, string, error) {
	if len(data) == 0 {
		return nil, "", upload.NewError(upload.CodeMissingFile, "no file payload received")
	}
	if p.opts.MaxBytes > 0 && int64(len(data)) > p.opts.MaxBytes {
		return nil, "", upload.NewError(upload.CodePayloadTooLarge,
			fmt.Sprintf("payload of %d bytes exceeds limit of %d bytes", len(data), p.opts.MaxBytes))
	}

	detected := sniff.DetectType(data)
	if sniff.ImageType(data) == "" {
		slog.Warn("Payload does not match a supported image signature",
			slog.String("filename", filename),
			slog.String("detected_type", detected))
	}

	asset, err := p.assets.Save(ctx, p.opts.Category, filename, bytes.NewReader(data))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, "", upload.WrapError(upload.CodeUploadTimeout, "upload exceeded the time budget", ctx.Err())
		}
		return nil, "", err
	}

	return asset, detected, nil
}
