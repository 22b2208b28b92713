package bjpeg

// BlockIterator walks an image plane in 8x8 blocks, grouped into
// step[0] x step[1] super-tiles (one super-tile per MCU position for a
// component with that sampling factor). Within a super-tile, blocks are
// visited with the horizontal index varying fastest; super-tiles themselves
// are visited in raster order.
type BlockIterator struct {
	step [2]int // (horizontal blocks, vertical blocks) per super-tile

	plane [][]float64 // row-major, height x width
	width int
	height int

	blockIndex int
	groupIndex int
	groupSize  int
	groupStep  int // super-tiles per row
	groupCount int
}

// NewBlockIterator creates an iterator for the given per-MCU step.
func NewBlockIterator(step [2]int) *BlockIterator {
	return &BlockIterator{step: step}
}

// Build allocates a zero-filled plane of the given size for accumulating
// decoded blocks. size must be divisible by 8*step[0] horizontally and
// 8*step[1] vertically, or Build returns InvalidShape.
func (it *BlockIterator) Build(width, height int) error {
	if err := it.checkShape(width, height); err != nil {
		return err
	}
	plane := make([][]float64, height)
	for r := range plane {
		plane[r] = make([]float64, width)
	}
	it.plane = plane
	it.width = width
	it.height = height
	it.setupCounters(width, height)
	return nil
}

// Feed attaches an existing plane (for encode, where the samples already
// exist) instead of allocating a new one.
func (it *BlockIterator) Feed(plane [][]float64) error {
	height := len(plane)
	width := 0
	if height > 0 {
		width = len(plane[0])
	}
	if err := it.checkShape(width, height); err != nil {
		return err
	}
	it.plane = plane
	it.width = width
	it.height = height
	it.setupCounters(width, height)
	return nil
}

func (it *BlockIterator) checkShape(width, height int) error {
	unitW := 8 * it.step[0]
	unitH := 8 * it.step[1]
	if width%unitW != 0 || height%unitH != 0 {
		return newError(InvalidShape, "plane %dx%d is not a multiple of the %dx%d MCU unit", width, height, unitW, unitH)
	}
	return nil
}

func (it *BlockIterator) setupCounters(width, height int) {
	it.groupSize = it.step[0] * it.step[1]
	it.groupStep = (width / it.step[0]) >> 3
	it.groupCount = (width * height / it.groupSize) >> 6
	it.blockIndex = 0
	it.groupIndex = 0
}

// End reports whether every super-tile has been visited.
func (it *BlockIterator) End() bool {
	return it.groupIndex >= it.groupCount
}

// nextOrigin returns the (row, col) origin of the next block and advances
// the cursor, following the exact traversal order of the reference
// implementation's super-tile walk.
func (it *BlockIterator) nextOrigin() (row, col int) {
	groupRow := it.groupIndex / it.groupStep
	groupCol := it.groupIndex % it.groupStep
	blockRow := it.blockIndex / it.step[0]
	blockCol := it.blockIndex % it.step[0]

	col = (groupCol*it.step[0] + blockCol) << 3
	row = (groupRow*it.step[1] + blockRow) << 3

	it.blockIndex++
	it.blockIndex %= it.groupSize
	if it.blockIndex == 0 {
		it.groupIndex++
	}
	return row, col
}

// GetNext returns the next 8x8 block's samples and advances the cursor.
func (it *BlockIterator) GetNext() SpatialBlock {
	row, col := it.nextOrigin()
	var block SpatialBlock
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			block[r][c] = it.plane[row+r][col+c]
		}
	}
	return block
}

// PutNext writes block into the next 8x8 position and advances the cursor.
func (it *BlockIterator) PutNext(block SpatialBlock) {
	row, col := it.nextOrigin()
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			it.plane[row+r][col+c] = block[r][c]
		}
	}
}

// GetAll returns the full underlying plane.
func (it *BlockIterator) GetAll() [][]float64 {
	return it.plane
}

// BlockCount returns the total number of 8x8 blocks the iterator covers.
func (it *BlockIterator) BlockCount() int {
	return it.groupCount * it.groupSize
}

// GroupCount returns the number of super-tiles (MCU positions) the iterator
// covers; every component sharing a frame's MCU grid has the same count.
func (it *BlockIterator) GroupCount() int {
	return it.groupCount
}
