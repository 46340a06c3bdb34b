// Package codec centralizes comparison-report encoding.
//
// Reports are written by name-selectable codecs so embedding applications
// can choose the serialization that fits their pipeline without touching
// the report writer.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Default is the codec used when the report writer is not configured with
// one explicitly.
var Default Codec = GoJSON{}
