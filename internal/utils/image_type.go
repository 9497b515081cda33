package utils

import (
	"bytes"
)

type imageSignature struct {
	prefix []byte
	mime   string
}

// Magic-byte table checked in order. RIFF containers are reported as
// webp since that is the only RIFF image the upstream vision API takes.
var imageSignatures = []imageSignature{
	{[]byte{0xFF, 0xD8}, "image/jpeg"},
	{[]byte{0x89, 0x50, 0x4E}, "image/png"},
	{[]byte{0x47, 0x49, 0x46}, "image/gif"},
	{[]byte{0x52, 0x49, 0x46}, "image/webp"},
}

var validImageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// DetectImageMimeType sniffs the image type from the leading bytes,
// falling back to the declared content type. A generic octet-stream
// declaration defaults to jpeg when the signature is unknown.
func DetectImageMimeType(data []byte, declared string) string {
	for _, sig := range imageSignatures {
		if len(data) >= len(sig.prefix) && bytes.HasPrefix(data, sig.prefix) {
			return sig.mime
		}
	}
	if declared == "application/octet-stream" || declared == "" {
		return "image/jpeg"
	}
	return declared
}

func IsValidImageMimeType(mime string) bool {
	return validImageMimeTypes[mime]
}
