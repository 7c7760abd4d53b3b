package receiver

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	filenameHeader = "X-file-name"
	filepathHeader = "X-file-path"
)

// resolveKey derives the storage key for an upload request.
//
// Filename priority: request path (leading slash stripped, used verbatim
// including nested segments) > X-file-name header > generated
// "<epoch-millis>.data". A non-blank X-file-path header is always prepended
// as a directory prefix, even when the path-derived filename carries its own
// nesting.
func resolveKey(requestPath string, header http.Header) string {
	filename := resolveFilename(requestPath, header)
	if dir := header.Get(filepathHeader); strings.TrimSpace(dir) != "" {
		return dir + "/" + filename
	}
	return filename
}

func resolveFilename(requestPath string, header http.Header) string {
	if requestPath != "" && requestPath != "/" {
		if filename := strings.TrimPrefix(requestPath, "/"); strings.TrimSpace(filename) != "" {
			return filename
		}
	}

	if filename := header.Get(filenameHeader); strings.TrimSpace(filename) != "" {
		return filename
	}

	return strconv.FormatInt(time.Now().UnixMilli(), 10) + ".data"
}
