package mat

// Order is the element order of a flat 16-element matrix array.
type Order int

const (
	// RowMajor reads elements (0,0), (0,1), (0,2), (0,3), (1,0), ...
	RowMajor Order = iota
	// ColMajor reads elements (0,0), (1,0), (2,0), (3,0), (0,1), ...
	ColMajor
)

func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "column-major"
	default:
		return "unknown"
	}
}
