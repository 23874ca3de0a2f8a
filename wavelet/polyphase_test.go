package wavelet

import "testing"

func TestGatherSplitsParities(t *testing.T) {
	tests := []struct {
		name string
		src  []float64
		want []float64
	}{
		{
			name: "Even length",
			src:  []float64{0, 1, 2, 3, 4, 5, 6, 7},
			want: []float64{0, 2, 4, 6, 1, 3, 5, 7},
		},
		{
			name: "Odd length",
			src:  []float64{0, 1, 2, 3, 4, 5, 6},
			want: []float64{0, 2, 4, 6, 1, 3, 5},
		},
		{
			name: "Two samples",
			src:  []float64{9, 4},
			want: []float64{9, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]float64, len(tt.src))
			gather(dst, tt.src)
			for i := range dst {
				if dst[i] != tt.want[i] {
					t.Fatalf("gather = %v, want %v", dst, tt.want)
				}
			}

			back := make([]float64, len(tt.src))
			scatter(back, dst)
			for i := range back {
				if back[i] != tt.src[i] {
					t.Fatalf("scatter(gather) = %v, want %v", back, tt.src)
				}
			}
		})
	}
}
