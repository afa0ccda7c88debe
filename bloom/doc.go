package bloom

/*

# Bloom set membership (plain and counting variants)

This package provides an in-memory Bloom filter and a counting Bloom filter
over arbitrary byte elements, with string elements rendered through a
configurable character encoding.

It is built from small composable pieces:

- a hash deriver that turns element bytes into k slot indexes
- a bit store holding the m-slot occupancy array
- a counter store holding the per-slot multiplicities of the counting variant
- a closed-form probability model for sizing and false positive projections

## What Bloom filters are (and are not)

Bloom filters provide a *probabilistic prefilter*:

- If the filter says "definitely not present", then the element is not present.
- If the filter says "maybe present", then the element may or may not be present
  (false positives are possible).

The plain variant never yields a false negative. The counting variant adds
per-element removal, and removal weakens that guarantee: decrementing slots an
absent element happens to share with present elements can clear bits those
elements rely on. This is intrinsic to counting filters, not a defect.

Bloom filters are NOT cryptographic commitments and the digests here are used
only for index derivation. They are an I/O and lookup optimization.

## Slot index derivation

Elements are hashed in salted rounds. Round s resets the digest engine, writes
the single salt byte s mod 256, then the element bytes, and finalizes. The
digest is consumed as consecutive 4-byte groups, each folded big-endian into an
unsigned 32-bit value; rounds continue until k values exist. Slot index i is
value i mod m.

Folding unsigned makes the value-to-slot mapping total. A signed fold followed
by abs() would need a special case for the most negative value, whose absolute
value is itself negative in two's complement.

The digest primitive is configurable per filter (md5 by default, see
Algorithms) and is fixed for the filter's lifetime. Identical element bytes,
hash count and algorithm always derive identical slots.

## Concurrency

A filter instance assumes a single caller goroutine. The one internally guarded
piece is the digest engine: each filter owns its engine and serializes the full
multi-round derivation, so concurrent lookups never interleave engine state.
Mutations of the bit and counter arrays are NOT synchronized; callers that
share a mutating filter across goroutines must provide their own exclusion.

*/
