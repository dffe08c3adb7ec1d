package parallel

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows divides height rows into bands of at most rowsPerBand rows.
// The bands cover [0, height) in order without gaps or overlap.
func SplitRows(height, rowsPerBand int) []Band {
	if height <= 0 {
		return nil
	}
	if rowsPerBand <= 0 {
		rowsPerBand = height
	}
	bands := make([]Band, 0, (height+rowsPerBand-1)/rowsPerBand)
	for y := 0; y < height; y += rowsPerBand {
		bands = append(bands, Band{Y0: y, Y1: min(y+rowsPerBand, height)})
	}
	return bands
}
