package grid

// StaggeredGrid describes a staggered layout. The host decides where each
// item goes at render time, so only the shape of the grid is known here.
type StaggeredGrid struct {
	SpanCount       int
	Orientation     Orientation
	LayoutDirection LayoutDirection
}

// StaggeredCell is the placement of one item in a staggered layout.
type StaggeredCell struct {
	SpanIndex int
	FullSpan  bool
}
