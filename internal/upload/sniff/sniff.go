package sniff

import (
	"bytes"

	"github.com/gabriel-vasile/mimetype"
)

// Leading bytes identifying the image formats the site accepts. The
// declared Content-Type is untrusted; these are what actually gate.
var magicTable = []struct {
	prefix []byte
	mime   string
}{
	{[]byte{0xFF, 0xD8, 0xFF}, "image/jpeg"},
	{[]byte{0x89, 0x50, 0x4E, 0x47}, "image/png"},
	{[]byte{0x47, 0x49, 0x46}, "image/gif"},
}

// ImageType returns the MIME type matched by the payload's magic bytes,
// or "" when no supported image signature matches.
func ImageType(data []byte) string {
	for _, m := range magicTable {
		if bytes.HasPrefix(data, m.prefix) {
			return m.mime
		}
	}
	return ""
}

// DetectType reports the best-effort content type of a payload: the
// supported image signature when one matches, otherwise whatever the
// general-purpose detector sees. Never empty.
func DetectType(data []byte) string {
	if t := ImageType(data); t != "" {
		return t
	}
	return mimetype.Detect(data).String()
}

// Video MIME types accepted by the video endpoints. Enforcement is
// strict here, unlike images where an unknown type is tolerated.
var allowedVideoTypes = map[string]bool{
	"video/mp4":  true,
	"video/webm": true,
	"video/ogg":  true,
}

// AllowedVideoType reports whether the declared type is an accepted
// video format.
func AllowedVideoType(contentType string) bool {
	return allowedVideoTypes[contentType]
}
