package bloom

import "golang.org/x/text/encoding"

// Options carries the optional construction parameters shared by both filter
// variants. The zero value selects DefaultAlgorithm and native UTF-8 string
// rendering.
type Options struct {
	Algorithm string
	Encoding  encoding.Encoding
}

type Option func(*Options)

// WithHashAlgorithm selects the digest engine backing slot derivation. See
// Algorithms for the registered names.
func WithHashAlgorithm(algorithm string) Option {
	return func(o *Options) {
		o.Algorithm = algorithm
	}
}

// WithEncoding selects the character encoding used to render string elements
// to bytes before hashing.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *Options) {
		o.Encoding = enc
	}
}
