package detect

// CountMap tallies detections per identity. Counts only ever increase
// during a run.
type CountMap map[string]int

// Add increments the count for an identity.
func (c CountMap) Add(identity string) {
	c[identity]++
}

// Merge folds another count map into this one. Useful when frames are
// enriched by parallel workers holding independent maps.
func (c CountMap) Merge(other CountMap) {
	for identity, n := range other {
		c[identity] += n
	}
}

// Total returns the total number of detections counted.
func (c CountMap) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Aggregate folds enriched detections from many frames into a single count
// map. Frames are processed in caller-supplied order and detections in
// detector-output order; the final map is invariant to both.
func Aggregate(frames [][]EnrichedDetection) CountMap {
	counts := make(CountMap)
	for _, frame := range frames {
		for _, d := range frame {
			counts.Add(d.Identity)
		}
	}
	return counts
}
