package bloom

import "golang.org/x/text/encoding"

// elementBytes renders s into the canonical byte sequence hashed for string
// elements. A nil enc means the native UTF-8 bytes of s.
//
// The encoder is wrapped with ReplaceUnsupported so unmappable runes are
// substituted and the rendering is total for any string. Two filters agree on
// string membership only when they agree on the encoding.
func elementBytes(s string, enc encoding.Encoding) []byte {
	if enc == nil {
		return []byte(s)
	}
	b, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		// With substitution in place the stock encoders do not fail; keep
		// the raw bytes if one ever does.
		return []byte(s)
	}
	return b
}
