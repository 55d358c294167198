package utils

// CreateRankList returns the positions 1..count, for results already in order.
// Positions past the uint16 range are clamped.
func CreateRankList(count int) []uint16 {
	if count <= 0 {
		return []uint16{}
	}
	ranks := make([]uint16, count)
	for i := range ranks {
		if i+1 > 0xFFFF {
			ranks[i] = 0xFFFF
			continue
		}
		ranks[i] = uint16(i + 1)
	}
	return ranks
}
