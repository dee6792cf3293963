package core

import (
	"slices"
	"testing"
)

func TestFillBinaryDeterministicPerSeed(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	FillBinary(NewRNG(7).Source(), a)
	FillBinary(NewRNG(7).Source(), b)
	if !slices.Equal(a, b) {
		t.Fatal("same seed should fill identical buffers")
	}
	for i, v := range a {
		if v > 1 {
			t.Fatalf("buf[%d]=%d, want 0 or 1", i, v)
		}
	}
}

func TestFillBinaryRoughlyBalanced(t *testing.T) {
	buf := make([]uint8, 10000)
	FillBinary(NewRNG(1).Source(), buf)
	ones := 0
	for _, v := range buf {
		ones += int(v)
	}
	// A fair coin lands within 5 standard deviations (250) of 5000.
	if ones < 4750 || ones > 5250 {
		t.Fatalf("got %d ones out of %d", ones, len(buf))
	}
}
