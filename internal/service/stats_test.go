package service

import "testing"

func TestCompletionRate(t *testing.T) {
	cases := []struct {
		done, total, want int
	}{
		{3, 10, 30},
		{0, 0, 0},
		{0, 5, 0},
		{5, 5, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds up
	}

	for _, tc := range cases {
		if got := completionRate(tc.done, tc.total); got != tc.want {
			t.Errorf("completionRate(%d, %d) = %d; want %d", tc.done, tc.total, got, tc.want)
		}
	}
}
