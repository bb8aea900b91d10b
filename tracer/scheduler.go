package tracer

// A block of frame rows assigned to a tracer.
type BlockAssignment struct {
	// Index of the tracer in the list passed to Schedule.
	Tracer int

	BlockY uint32
	BlockH uint32
}

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split frame into blocks and assign them to the pool of tracers.
	// The returned blocks cover every row of the frame exactly once.
	Schedule(tracers []Tracer, frameH uint32) []BlockAssignment
}

// The naive scheduler splits the frame into one contiguous block per tracer.
type naiveScheduler struct{}

// Create a new naive scheduler instance.
func NaiveScheduler() BlockScheduler {
	return naiveScheduler{}
}

// Split the frame rows evenly between tracers. Rows that do not divide evenly
// are handed out one by one starting from the first tracer. Tracers that
// would receive no rows are skipped.
func (sch naiveScheduler) Schedule(tracers []Tracer, frameH uint32) []BlockAssignment {
	if len(tracers) == 0 || frameH == 0 {
		return nil
	}

	numTracers := uint32(len(tracers))
	rowsPerTracer := frameH / numTracers
	extraRows := frameH % numTracers

	blocks := make([]BlockAssignment, 0, len(tracers))
	var blockY uint32
	for idx := range tracers {
		blockH := rowsPerTracer
		if uint32(idx) < extraRows {
			blockH++
		}
		if blockH == 0 {
			continue
		}

		blocks = append(blocks, BlockAssignment{Tracer: idx, BlockY: blockY, BlockH: blockH})
		blockY += blockH
	}

	return blocks
}

// The fixed block scheduler splits the frame into small blocks of equal
// height and deals them to the tracers in round-robin fashion. Interleaving
// blocks spreads expensive regions of the frame across all tracers.
type fixedBlockScheduler struct {
	blockH uint32
}

// Create a scheduler that emits blocks with the given height. A zero height
// is treated as 1.
func FixedBlockScheduler(blockH uint32) BlockScheduler {
	return fixedBlockScheduler{blockH: max(blockH, 1)}
}

func (sch fixedBlockScheduler) Schedule(tracers []Tracer, frameH uint32) []BlockAssignment {
	if len(tracers) == 0 || frameH == 0 {
		return nil
	}

	blocks := make([]BlockAssignment, 0, (frameH+sch.blockH-1)/sch.blockH)
	for blockY := uint32(0); blockY < frameH; blockY += sch.blockH {
		blocks = append(blocks, BlockAssignment{
			Tracer: len(blocks) % len(tracers),
			BlockY: blockY,
			BlockH: min(sch.blockH, frameH-blockY),
		})
	}

	return blocks
}
