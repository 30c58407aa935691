package bench

import "math/rand/v2"

// GenerateInput returns size pseudo-random values in [0, size*10).
// The generator is reseeded on every call, so equal arguments always
// produce equal slices.
func GenerateInput(size int, seed int64) []int {
	if size <= 0 {
		return []int{}
	}
	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	data := make([]int, size)
	for i := range data {
		data[i] = r.IntN(size * 10)
	}
	return data
}
