package core

import (
	"os"
	"strconv"
	"testing"
	"time"
)

func TestGetSeedFromEnv(t *testing.T) {
	expectedSeed := int64(12345)
	os.Setenv("HWALK_SEED", strconv.FormatInt(expectedSeed, 10))
	defer os.Unsetenv("HWALK_SEED")

	seed := GetSeed()
	if seed != expectedSeed {
		t.Errorf("GetSeed() = %d; want %d", seed, expectedSeed)
	}
}

func TestGetSeedFromEnvInvalid(t *testing.T) {
	os.Setenv("HWALK_SEED", "invalid")
	defer os.Unsetenv("HWALK_SEED")

	seed := GetSeed()
	if seed == 0 {
		t.Errorf("GetSeed() = %d; want non-zero value", seed)
	}
}

func TestGetSeedFromTime(t *testing.T) {
	os.Unsetenv("HWALK_SEED")
	seed1 := GetSeed()
	time.Sleep(1 * time.Millisecond)
	seed2 := GetSeed()
	if seed1 == seed2 {
		t.Errorf("GetSeed() = %d; subsequent call returned the same seed %d", seed1, seed2)
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a := NewRand(7)
	b := NewRand(7)
	for i := 0; i < 100; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
	}
}
