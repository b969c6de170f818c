package wavefront

// Expected computes the value the wavefront converges to at cell (0,0) for
// the given dimensions, without any concurrency: a bottom-up sweep applying
// the same east+south+southeast rule over seeded borders. It serves as an
// oracle for the concurrent runner; the numbers it produces are the
// Delannoy numbers D(rows-1, cols-1).
func Expected(rows, cols int) int {
	values := make([]int, rows*cols)
	for col := 0; col < cols; col++ {
		values[(rows-1)*cols+col] = 1
	}
	for row := 0; row < rows-1; row++ {
		values[row*cols+cols-1] = 1
	}
	for row := rows - 2; row >= 0; row-- {
		for col := cols - 2; col >= 0; col-- {
			i := row*cols + col
			values[i] = values[i+1] + values[i+cols] + values[i+cols+1]
		}
	}
	return values[0]
}
