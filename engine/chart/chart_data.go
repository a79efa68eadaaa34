package chart

// ChartData is an ordered set of vertices plus the viewport they were built for.
// It is immutable once built; renderers borrow it to fill a GPU buffer and do not retain it.
type ChartData struct {
	vertices       []Vertex
	viewportWidth  float32
	viewportHeight float32
}

// NewChartData creates an empty ChartData for a viewport of the given pixel size.
//
// Parameters:
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - *ChartData: an empty dataset
func NewChartData(width, height float32) *ChartData {
	return &ChartData{
		viewportWidth:  width,
		viewportHeight: height,
	}
}

// AddPoint appends one already-normalized point.
//
// Parameters:
//   - p: the position in output coordinates
//   - c: the point color
//   - size: the point size in pixels
func (d *ChartData) AddPoint(p Point2D, c Color, size float32) {
	d.vertices = append(d.vertices, NewVertex(p, c, size))
}

// Vertices returns the vertex slice. Callers must not modify it.
func (d *ChartData) Vertices() []Vertex {
	return d.vertices
}

// Len returns the number of vertices.
func (d *ChartData) Len() int {
	return len(d.vertices)
}

// ViewportWidth returns the viewport width in pixels.
func (d *ChartData) ViewportWidth() float32 {
	return d.viewportWidth
}

// ViewportHeight returns the viewport height in pixels.
func (d *ChartData) ViewportHeight() float32 {
	return d.viewportHeight
}

// ByteSize returns the size in bytes of the GPU vertex buffer for this dataset.
//
// Returns:
//   - uint64: Len() * VertexSize
func (d *ChartData) ByteSize() uint64 {
	return uint64(len(d.vertices)) * VertexSize
}

// Bytes serializes every vertex into one contiguous buffer ready for upload.
//
// Returns:
//   - []byte: ByteSize() bytes, or nil when the dataset is empty
func (d *ChartData) Bytes() []byte {
	if len(d.vertices) == 0 {
		return nil
	}
	buf := make([]byte, d.ByteSize())
	for i := range d.vertices {
		d.vertices[i].MarshalTo(buf[i*VertexSize:])
	}
	return buf
}
