package utils

// CreateRankList returns ranks 1..count for items that are already sorted.
func CreateRankList(count int) []uint32 {
	if count <= 0 {
		return []uint32{}
	}
	ranks := make([]uint32, count)
	for i := range ranks {
		ranks[i] = uint32(i + 1)
	}
	return ranks
}
