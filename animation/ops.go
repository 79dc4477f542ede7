package animation

// These functions operate on a working copy of a brightness vector held as
// ints, so that intermediate cascade values never wrap.

func valueAt(values []int8, i int) int {
	if i < len(values) {
		return int(values[i])
	}
	return 0
}

// load replaces the vector. Levels are clamped into range.
func load(levels []int, values []int8) {
	for i := range levels {
		v := valueAt(values, i)
		switch {
		case v < 0:
			v = 0
		case v > MaxLevel:
			v = MaxLevel
		}
		levels[i] = v
	}
}

// add adds values to the vector. A channel that leaves the range in either
// direction snaps to zero.
func add(levels []int, values []int8) {
	for i := range levels {
		levels[i] += valueAt(values, i)
		if levels[i] < 0 || levels[i] > MaxLevel {
			levels[i] = 0
		}
	}
}

// divide divides each channel by its value. The value is read as an unsigned
// byte; zero leaves the channel untouched.
func divide(levels []int, values []int8) {
	for i := range levels {
		d := int(uint8(valueAt(values, i)))
		if d != 0 {
			levels[i] /= d
		}
	}
}

// rotateRight moves every level one position up, the last wrapping to the
// first.
func rotateRight(levels []int) {
	if len(levels) < 2 {
		return
	}
	last := levels[len(levels)-1]
	copy(levels[1:], levels[:len(levels)-1])
	levels[0] = last
}

// rotateLeft moves every level one position down, the first wrapping to the
// last.
func rotateLeft(levels []int) {
	if len(levels) < 2 {
		return
	}
	first := levels[0]
	copy(levels, levels[1:])
	levels[len(levels)-1] = first
}

// saturate clamps the level into range and returns what had to be removed:
// positive for an overflow, negative for an underflow.
func saturate(level *int) int {
	switch {
	case *level < 0:
		excess := *level
		*level = 0
		return excess
	case *level > MaxLevel:
		excess := *level - MaxLevel
		*level = MaxLevel
		return excess
	default:
		return 0
	}
}

// diffuse pours each channel's value into the chain, in chain order. Whatever
// a channel cannot hold cascades into the following channels of the chain.
// Excess that reaches the end of the chain is dropped.
func diffuse(levels []int, values []int8, chain []int) {
	if len(chain) == 0 {
		return
	}
	for k, idx := range chain {
		levels[idx] += valueAt(values, idx)
		for m := k; m < len(chain)-1; m++ {
			levels[chain[m+1]] += saturate(&levels[chain[m]])
		}
	}
	saturate(&levels[chain[len(chain)-1]])
}

// chains holds the cascade orders of a stream's two halves.
type chains struct {
	up   [2][]int // outer ends towards the split
	down [2][]int // split towards the outer ends
}

func newChains(channels, split int) chains {
	if split < 0 || split > channels {
		split = channels
	}

	var c chains
	for i := 0; i < split; i++ {
		c.up[0] = append(c.up[0], i)
		c.down[0] = append(c.down[0], split-1-i)
	}
	for i := channels - 1; i >= split; i-- {
		c.up[1] = append(c.up[1], i)
		c.down[1] = append(c.down[1], channels-1-i+split)
	}
	return c
}
