package format

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasttemplate"
)

// DefaultTemplate mirrors the classic sum-tool output of
// digest, two spaces, path.
const DefaultTemplate = "{digest}  {path}"

// Row is one checksum result.
type Row struct {
	Path      string `json:"path"`
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
}

// Render substitutes {digest}, {path} and {algorithm}
// placeholders in tpl with the row values. Unknown
// placeholders are preserved as-is.
func Render(tpl string, row Row) string {
	ctx := map[string]interface{}{
		"digest":    row.Digest,
		"path":      row.Path,
		"algorithm": row.Algorithm,
	}

	return fasttemplate.ExecuteStringStd(tpl, "{", "}", ctx)
}

// EncodeJSON writes rows to w as an indented JSON array.
func EncodeJSON(w io.Writer, rows []Row) error {
	const errCtx = "encoding rows"

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(rows); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}
