package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter formats data as indented JSON.
// HTML characters are written as-is since memo text is shown, not embedded.
type JSONFormatter struct {
	Compact bool
}

// Format writes data followed by a newline.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if !f.Compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(data)
}
