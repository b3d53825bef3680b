package quantmark

// Levels assigns each gate its dependency level: 1 plus the highest level
// among earlier gates sharing a qubit with it. A gate cannot execute before
// the gates that affect the same qubits, so levels are the earliest possible
// time slots and the highest level is the circuit's gate depth.
func (c *Circuit) Levels() []int {
	levels := make([]int, len(c.Gates))
	lastLevel := make(map[int]int) // qubit -> level of the last gate touching it
	for i, g := range c.Gates {
		level := 1
		for _, q := range g.qubits() {
			if lastLevel[q]+1 > level {
				level = lastLevel[q] + 1
			}
		}
		levels[i] = level
		for _, q := range g.qubits() {
			lastLevel[q] = level
		}
	}
	return levels
}

// Depth returns the gate depth: the length of the longest chain of
// sequentially dependent gates. Zero for an empty circuit.
func (c *Circuit) Depth() int {
	depth := 0
	for _, level := range c.Levels() {
		depth = max(depth, level)
	}
	return depth
}
