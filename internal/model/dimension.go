package model

// Dimension audience class of a viewer
type Dimension float64

const (
	DimensionAll     Dimension = 1.0
	DimensionNonReal Dimension = 2.0
	DimensionReal    Dimension = 3.0
)

// RealFilter value posts.is_real must equal, nil when both partitions are visible
func (d Dimension) RealFilter() *bool {
	var v bool
	switch d {
	case DimensionNonReal:
		v = false
	case DimensionReal:
		v = true
	default:
		return nil
	}
	return &v
}
