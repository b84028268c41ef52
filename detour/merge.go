package detour

// merger stitches solved blocks into one pairwise weight map spanning the
// whole graph. Blocks form a tree joined at cut vertices, so each incoming
// block intersects the already-merged vertex set in exactly one vertex;
// any simple path crossing between the two sides must pass through it.
type merger struct {
	pending []blockResult    // blocks not yet merged
	nodes   map[int]struct{} // vertices covered by acc
	acc     map[pair]float64 // pairwise weights over nodes
}

// mergeBlocks combines per-block pairwise maps into one map over the full
// vertex set. The result is independent of block order (tested), because
// every cross-side entry is fixed the moment both endpoints are covered
// and never changes afterwards.
//
// Errors:
//   - ErrMultipleCommonNodes: an incoming block shares >1 vertex with the
//     merged set (decomposition is not a tree of blocks).
//   - ErrNotConnected: no pending block touches the merged set (a
//     disconnected input surfaced late).
//   - ErrUnknownWeight: a pair resolves through none of the lookup cases.
//
// Time: O(V² · B) overall, B = number of blocks.
func mergeBlocks(blocks []blockResult) (map[pair]float64, error) {
	if len(blocks) == 0 {
		return nil, ErrGraphEmpty
	}

	// Seed from the last block. The pending slice and seed maps are copied
	// so callers keep their inputs intact; block-local maps are only read.
	seed := blocks[len(blocks)-1]
	pending := make([]blockResult, len(blocks)-1)
	copy(pending, blocks[:len(blocks)-1])
	m := &merger{
		pending: pending,
		nodes:   make(map[int]struct{}, len(seed.nodes)),
		acc:     make(map[pair]float64, len(seed.paths)),
	}
	for v := range seed.nodes {
		m.nodes[v] = struct{}{}
	}
	for k, w := range seed.paths {
		m.acc[k] = w
	}

	for len(m.pending) > 0 {
		if err := m.step(); err != nil {
			return nil, err
		}
	}

	return m.acc, nil
}

// step merges one pending block adjacent to the merged set.
func (m *merger) step() error {
	// 1. Find a pending block sharing exactly one vertex (the cut vertex).
	blk, cut, idx := blockResult{}, -1, -1
	var common, c, n int
	for i := len(m.pending) - 1; i >= 0; i-- {
		common, c = 0, -1
		for n = range m.pending[i].nodes {
			if _, ok := m.nodes[n]; ok {
				common++
				c = n
			}
		}
		if common == 0 {
			continue
		}
		if common > 1 {
			return ErrMultipleCommonNodes
		}
		blk, cut, idx = m.pending[i], c, i
		break
	}
	if idx < 0 {
		return ErrNotConnected
	}
	m.pending = append(m.pending[:idx], m.pending[idx+1:]...)

	// 2. Extend the covered vertex set, then rebuild the pair map over the
	//    union, consulting the previous map and the new block.
	for n = range blk.nodes {
		m.nodes[n] = struct{}{}
	}

	next := make(map[pair]float64, len(m.nodes)*(len(m.nodes)+1)/2)
	var i, j int
	for i = range m.nodes {
		for j = range m.nodes {
			if i > j {
				continue
			}
			w, err := m.calcWeight(blk, cut, i, j)
			if err != nil {
				return err
			}
			next[pair{U: i, V: j}] = w
		}
	}
	m.acc = next

	return nil
}

// calcWeight resolves the pairwise weight of (i, j) during the merge of
// blk at cut vertex c. Resolution order:
//
//  1. both endpoints already covered: keep the existing value;
//  2. both endpoints inside the new block: take the block-local value;
//  3. one endpoint per side: concatenate acc[i,c] + blk[c,j] (either
//     orientation) through the unique cut vertex.
//
// Pairs touching c resolve through case 1 or 2, since c appears on both
// sides (the degenerate (c,c) pair sits at 0 in both maps). Anything else
// is an internal inconsistency.
func (m *merger) calcWeight(blk blockResult, c, i, j int) (float64, error) {
	ij := orient(i, j)
	if w, ok := m.acc[ij]; ok {
		return w, nil
	}
	if w, ok := blk.paths[ij]; ok {
		return w, nil
	}

	ic := orient(i, c)
	jc := orient(j, c)
	if aw, ok := m.acc[ic]; ok {
		if bw, bok := blk.paths[jc]; bok {
			return aw + bw, nil
		}
	}
	if aw, ok := m.acc[jc]; ok {
		if bw, bok := blk.paths[ic]; bok {
			return aw + bw, nil
		}
	}

	return 0, ErrUnknownWeight
}
