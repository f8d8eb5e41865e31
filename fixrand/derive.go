package fixrand

// DeriveSeed folds a (domain seed, feature key, index) tuple into one 64-bit
// seed. Pure function: identical tuples always produce identical seeds, and
// each component passes through the full mixer so that adjacent indices or
// similar keys land far apart.
func DeriveSeed(domainSeed uint64, featureKey string, index uint64) uint64 {
	x := mix64(domainSeed)
	x = mix64(x ^ fnv1a(featureKey))
	x = mix64(x ^ index)
	return x
}

// Derive constructs the generator for one logical stream of the simulation,
// e.g. Derive(worldSeed, "terrain", chunkIndex). Streams for distinct keys
// or indices are independent for simulation purposes, so actors never need
// to share an instance.
func Derive(domainSeed uint64, featureKey string, index uint64) *Generator {
	return New(DeriveSeed(domainSeed, featureKey, index))
}

// fnv1a is the 64-bit FNV-1a string hash. Inlined rather than pulled from
// hash/fnv: the stdlib version works through a hash.Hash64 and a byte-slice
// Write, and the derivation must stay a pinned, allocation-free pure
// function.
func fnv1a(s string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}
