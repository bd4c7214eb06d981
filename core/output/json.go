// Package output - JSON renderer
package output

import (
	"encoding/json"
	"io"

	"contractor-quote/core/quote"
)

type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format {
	return FormatJSON
}

func (f *jsonFormatter) Render(w io.Writer, result *quote.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
