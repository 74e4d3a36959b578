package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// PlainTexter is implemented by payloads that have a one-line plain
// rendering (for scripting: `easydate pick --format plain`).
type PlainTexter interface {
	PlainText() string
}

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - plain (payload must implement PlainTexter)
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "plain":
		p, ok := v.(PlainTexter)
		if !ok {
			return fmt.Errorf("payload %T has no plain rendering", v)
		}
		_, err := fmt.Fprintln(w, p.PlainText())
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
//
// NOTE: Output stays strict JSON only; anything advisory belongs in a
// `meta` object, not in loose trailing text.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}
