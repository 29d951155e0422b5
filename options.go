package folio

// extractOptions holds configuration for text extraction.
type extractOptions struct {
	// Page range (1-indexed, inclusive; endPage 0 means last page)
	startPage int
	endPage   int

	// Column layout
	defaultColumns int
	oddColumns     string
	evenColumns    string

	// Cropping and reconstruction
	headerRatio        float64
	footerRatio        float64
	lineTolerance      float64
	gapRatio           float64
	normalizeLigatures bool
}

// defaultOptions returns the default extraction options: the whole
// document, three equal columns, standard header/footer crop.
func defaultOptions() extractOptions {
	return extractOptions{
		startPage:      1,
		endPage:        0, // to the last page
		defaultColumns: 3,
		headerRatio:    0.08,
		footerRatio:    0.06,
		lineTolerance:  2.0,
		gapRatio:       0.5,
	}
}
