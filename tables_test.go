package simddecimal

import (
	"fmt"
	"testing"
)

func TestLengthShiftControlTable(t *testing.T) {
	cases := []int{0, 1, 5, 15, 16}
	for _, length := range cases {
		t.Run(fmt.Sprintf("length_%d", length), func(t *testing.T) {
			got := lengthShiftControl[length]
			shiftUpFront := 16 - length
			for i := 0; i < 16; i++ {
				if i < shiftUpFront {
					if got[i] != selectZero {
						t.Errorf("length=%d i=%d: want selectZero, got %d", length, i, got[i])
					}
					continue
				}
				want := byte(i - shiftUpFront)
				if got[i] != want {
					t.Errorf("length=%d i=%d: want %d, got %d", length, i, want, got[i])
				}
			}
		})
	}
}

func TestDotShuffleControlTable(t *testing.T) {
	t.Run("no_dot_is_identity", func(t *testing.T) {
		got := dotShuffleControl[16]
		for i := 0; i < 16; i++ {
			if got[i] != byte(i) {
				t.Errorf("i=%d: want %d, got %d", i, i, got[i])
			}
		}
	})

	t.Run("dot_at_zero_zero_fills_position_zero", func(t *testing.T) {
		got := dotShuffleControl[0]
		if got[0] != selectZero {
			t.Errorf("position 0: want selectZero, got %d", got[0])
		}
		for i := 1; i < 16; i++ {
			if got[i] != byte(i) {
				t.Errorf("i=%d: want %d, got %d", i, i, got[i])
			}
		}
	})

	t.Run("dot_in_the_middle_shifts_the_prefix", func(t *testing.T) {
		got := dotShuffleControl[7]
		if got[0] != selectZero {
			t.Errorf("position 0: want selectZero, got %d", got[0])
		}
		for i := 1; i <= 7; i++ {
			want := byte(i - 1)
			if got[i] != want {
				t.Errorf("i=%d: want %d, got %d", i, want, got[i])
			}
		}
		for i := 8; i < 16; i++ {
			if got[i] != byte(i) {
				t.Errorf("i=%d: want %d, got %d", i, i, got[i])
			}
		}
	})
}

func TestExponentFromBitsTable(t *testing.T) {
	for d := 0; d <= 16; d++ {
		want := uint8(0)
		if d < 16 {
			want = uint8(15 - d)
		}
		if got := exponentFromBitsTable[d]; got != want {
			t.Errorf("dotIdx=%d: want %d, got %d", d, want, got)
		}
	}
}
