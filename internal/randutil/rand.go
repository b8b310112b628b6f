package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// It centralises how the two 64-bit seeds required by rand/v2 are derived so
// that every call site gets reproducible shuffles from a single run seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// ShardSeed derives an independent seed for a numbered shard of work. Rounds
// simulated under different shards must not share card sequences, so each
// shard gets its own well-mixed stream.
func ShardSeed(seed int64, shard int) int64 {
	return int64(mix(uint64(seed) + uint64(shard+1)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
