package constants

import "strings"

// AllowedExtensions holds the upload extensions accepted for processing.
var AllowedExtensions = map[string]struct{}{
	"csv":  {},
	"xlsx": {},
	"xlsm": {},
}

// Date layouts used across the processing pipeline.
const (
	// DisplayDateLayout is the Brazilian date form used on rendered invoices.
	DisplayDateLayout = "02/01/2006"
	// InputDateLayout is the form accepted for caller-supplied custom dates.
	InputDateLayout = "2006-01-02"
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
