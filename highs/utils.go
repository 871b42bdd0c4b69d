package highs

import "sort"

// nonzerosToCSR converts a slice of Nonzero elements to compressed
// sparse row format with one start entry per row, so rows without
// coefficients stay addressable. Duplicate (row, col) entries keep the
// last value.
func nonzerosToCSR(numRow int, nz []Nonzero) (start, index []int, value []float64, err error) {
	if len(nz) == 0 && numRow == 0 {
		return nil, nil, nil, nil
	}

	// Sort by row, then by column
	sorted := make([]Nonzero, len(nz))
	copy(sorted, nz)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})

	filtered := make([]Nonzero, 0, len(sorted))
	for _, n := range sorted {
		if n.Row < 0 || n.Col < 0 {
			return nil, nil, nil, newErrorMsg("nonzerosToCSR", "negative row or column index")
		}
		if n.Row >= numRow {
			return nil, nil, nil, newErrorMsg("nonzerosToCSR", "row index out of range")
		}
		if len(filtered) > 0 && filtered[len(filtered)-1].Row == n.Row && filtered[len(filtered)-1].Col == n.Col {
			filtered[len(filtered)-1].Val = n.Val
		} else {
			filtered = append(filtered, n)
		}
	}

	start = make([]int, numRow)
	index = make([]int, len(filtered))
	value = make([]float64, len(filtered))

	pos := 0
	for row := 0; row < numRow; row++ {
		start[row] = pos
		for pos < len(filtered) && filtered[pos].Row == row {
			index[pos] = filtered[pos].Col
			value[pos] = filtered[pos].Val
			pos++
		}
	}

	return start, index, value, nil
}

// expandSlice expands a slice to length n if it's empty, filling with
// fillValue. Returns the original slice if it already has length n and
// an error if the slice has a non-zero length that differs from n.
func expandSlice(n int, slice []float64, fillValue float64) ([]float64, error) {
	if len(slice) == n {
		return slice, nil
	}
	if len(slice) == 0 {
		result := make([]float64, n)
		for i := range result {
			result[i] = fillValue
		}
		return result, nil
	}
	return nil, newErrorMsg("expandSlice", "inconsistent slice length")
}
