package dslab

import (
	"math/bits"
	"testing"
)

func TestBitArray(t *testing.T) {
	a := NewBitArray(bits.UintSize + 1)
	if a.Len() != 2*bits.UintSize {
		t.Errorf("len is %d, want %d", a.Len(), 2*bits.UintSize)
	}
	for _, i := range []int{0, 3, bits.UintSize - 1, bits.UintSize} {
		if a.Get(i) {
			t.Errorf("bit %d is up before Up", i)
		}
		a.Up(i)
		if !a.Get(i) {
			t.Errorf("bit %d is down after Up", i)
		}
	}
	if a.Count() != 4 {
		t.Errorf("count is %d, want 4", a.Count())
	}
	a.Down(3)
	if a.Get(3) || !a.Get(0) || a.Count() != 3 {
		t.Errorf("Down changed the wrong bits")
	}
	if NewBitArray(0).Len() != 0 {
		t.Errorf("empty array has bits")
	}
}
