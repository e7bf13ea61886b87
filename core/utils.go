package core

import (
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// GetSeed receives a seed value for random number generation from the HWALK_SEED environment variable.
func GetSeed() int64 {
	seedStr := os.Getenv("HWALK_SEED")
	if seedStr != "" {
		if seed, err := strconv.ParseInt(seedStr, 10, 64); err == nil {
			log.Info().Msgf("Using seed from HWALK_SEED value: %d", seed)
			return seed
		}
		log.Warn().Msgf("Failed to parse HWALK_SEED value: %s", seedStr)
	}
	seed := time.Now().UnixNano()
	log.Info().Msgf("Using current time as seed: %d", seed)
	return seed
}

// NewRand returns a generator seeded with seed. Two generators built from the
// same seed produce the same sequence.
func NewRand(seed int64) *rand.Rand {
	return rand.New(NewSource(seed))
}

// NewSource returns the PCG source behind NewRand.
func NewSource(seed int64) rand.Source {
	s := uint64(seed)
	return rand.NewPCG(s, s^0x9e3779b97f4a7c15)
}
