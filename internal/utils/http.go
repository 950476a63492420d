package utils

import (
	"mime"
	"path/filepath"
	"strings"
)

// AttachmentFilename extracts the file name from a Content-Disposition
// header value such as `attachment; filename="report.pdf"`. RFC 5987
// encoded names (filename*=UTF-8''...) are decoded by mime.
//
// Only the base name is returned, so a hostile header cannot point outside
// the directory the caller saves into. ok is false when the header is
// malformed or carries no usable name.
func AttachmentFilename(header string) (name string, ok bool) {
	if strings.TrimSpace(header) == "" {
		return "", false
	}

	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return "", false
	}

	name = strings.TrimSpace(params["filename"])
	if name == "" {
		return "", false
	}

	name = filepath.Base(filepath.Clean("/" + strings.ReplaceAll(name, `\`, "/")))
	if name == "/" || name == "." || name == ".." {
		return "", false
	}
	return name, true
}
