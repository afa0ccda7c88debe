package bloom

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// Registered digest algorithm names, as accepted by WithHashAlgorithm.
// Lookup is case-insensitive and ignores dashes and underscores, so "SHA-256"
// and "sha256" name the same engine.
const (
	AlgMD5      = "md5"
	AlgSHA1     = "sha1"
	AlgSHA256   = "sha256"
	AlgSHA512   = "sha512"
	AlgFNV128   = "fnv128"
	AlgFNV128a  = "fnv128a"
	AlgMurmur3  = "murmur3"
	AlgXXHash64 = "xxhash64"
)

// DefaultAlgorithm is the digest used when no WithHashAlgorithm option is
// given.
const DefaultAlgorithm = AlgMD5

// Every registered engine produces a digest whose size is a multiple of 4
// bytes, so derivation rounds fold the whole digest.
var hashFactories = map[string]func() hash.Hash{
	AlgMD5:      md5.New,
	AlgSHA1:     sha1.New,
	AlgSHA256:   sha256.New,
	AlgSHA512:   sha512.New,
	AlgFNV128:   fnv.New128,
	AlgFNV128a:  fnv.New128a,
	AlgMurmur3:  func() hash.Hash { return murmur3.New128() },
	AlgXXHash64: func() hash.Hash { return xxhash.New() },
}

// Algorithms returns the registered digest algorithm names, sorted.
func Algorithms() []string {
	names := make([]string, 0, len(hashFactories))
	for name := range hashFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeAlgorithm(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// lookupAlgorithm resolves name to its normalized form and engine factory.
// The empty name selects DefaultAlgorithm.
func lookupAlgorithm(name string) (string, func() hash.Hash, error) {
	if name == "" {
		name = DefaultAlgorithm
	}
	norm := normalizeAlgorithm(name)
	factory, ok := hashFactories[norm]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return norm, factory, nil
}
