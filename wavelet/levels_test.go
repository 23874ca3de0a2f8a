package wavelet

import "testing"

func TestDyadicLevels(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 0},
		{7, 0}, // below the eight-sample floor
		{8, 1},
		{9, 1},
		{15, 1},
		{16, 2},
		{17, 2},
		{64, 4},
		{100, 4},
		{512, 6},
		{1024, 6}, // cap
		{1000000, 6},
	}

	for _, tt := range tests {
		if got := DyadicLevels(tt.n); got != tt.want {
			t.Errorf("DyadicLevels(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPacketPartitions(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 0},
		{2, 1},
		{3, 2},
		{5, 3},
		{16, 4},
	}

	for _, tt := range tests {
		if got := PacketPartitions(tt.n); got != tt.want {
			t.Errorf("PacketPartitions(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestLowSize(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{16, 8},
		{17, 9},
	}

	for _, tt := range tests {
		if got := LowSize(tt.n); got != tt.want {
			t.Errorf("LowSize(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestSubbandLengths(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		levels int
		want   []int
	}{
		{"No levels", 10, 0, []int{10}},
		{"Power of two", 16, 2, []int{4, 4, 8}},
		{"Odd telescoping", 17, 2, []int{5, 4, 8}},
		{"Down to singles", 5, 3, []int{1, 1, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubbandLengths(tt.n, tt.levels)
			if len(got) != len(tt.want) {
				t.Fatalf("SubbandLengths(%d,%d) = %v, want %v", tt.n, tt.levels, got, tt.want)
			}
			total := 0
			for i := range got {
				total += got[i]
				if got[i] != tt.want[i] {
					t.Fatalf("SubbandLengths(%d,%d) = %v, want %v", tt.n, tt.levels, got, tt.want)
				}
			}
			if total != tt.n {
				t.Fatalf("sub-band lengths sum to %d, want %d", total, tt.n)
			}
		})
	}
}
