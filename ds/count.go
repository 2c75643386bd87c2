package ds

import "math"

// MaxCount is the largest number of elements a container reports. Counts are unsigned 32-bit values that never exceed
// the signed 32-bit range so they can always be used as an index.
const MaxCount uint32 = math.MaxInt32

// IncreaseCount returns count+1 saturated at MaxCount.
func IncreaseCount(count uint32) uint32 {
	if count >= MaxCount {
		return MaxCount
	}

	return count + 1
}

// DecreaseCount returns count-1 saturated at 0.
func DecreaseCount(count uint32) uint32 {
	if count == 0 {
		return 0
	}

	return count - 1
}
