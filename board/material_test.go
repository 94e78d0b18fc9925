package board_test

import (
	"testing"
)

func TestInsufficientMaterial(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want bool
	}{
		{"kings only", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"king vs king+bishop", "4k3/8/8/8/8/3B4/8/4K3 w - - 0 1", true},
		{"king vs king+knight", "4k3/8/8/8/8/3N4/8/4K3 b - - 0 1", true},
		{"minor each", "4k3/8/6b1/8/8/3NK3/8/8 w - - 0 1", true},
		{"two knights", "4k3/8/8/8/8/2NN4/8/4K3 w - - 0 1", false},
		{"lone pawn", "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1", false},
		{"lone rook", "4k3/8/8/8/8/4R3/8/4K3 w - - 0 1", false},
		{"lone queen", "4k3/8/8/8/8/4Q3/8/4K3 w - - 0 1", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := decode(t, tc.fen)
			if got := b.HasInsufficientMaterial(); got != tc.want {
				t.Fatalf("HasInsufficientMaterial() = %v, want %v", got, tc.want)
			}
		})
	}
}
