package permutation

// Permutation is a bijection over [0, F) for a fixed F. The zero value is
// not meaningful; build one with Identity, FromGoesTo, or FromComesFrom.
type Permutation struct {
	// goesTo[s] is the facelet that s's content moves to.
	goesTo []int
	// comesFrom is the inverse of goesTo: comesFrom[s] is the facelet whose
	// content now occupies position s.
	comesFrom []int
}

// Identity returns the identity permutation over [0, size).
func Identity(size int) Permutation {
	goesTo := make([]int, size)
	comesFrom := make([]int, size)
	for i := range goesTo {
		goesTo[i] = i
		comesFrom[i] = i
	}

	return Permutation{goesTo: goesTo, comesFrom: comesFrom}
}

// FromGoesTo builds a Permutation from a dense "goes to" mapping: mapping[i]
// is the facelet that i's content moves to. mapping must be a bijection on
// [0, len(mapping)).
func FromGoesTo(mapping []int) (Permutation, error) {
	comesFrom, err := invert(mapping)
	if err != nil {
		return Permutation{}, err
	}

	return Permutation{goesTo: append([]int(nil), mapping...), comesFrom: comesFrom}, nil
}

// FromComesFrom builds a Permutation from a dense "comes from" mapping:
// mapping[i] is the facelet whose content now occupies position i.
func FromComesFrom(mapping []int) (Permutation, error) {
	goesTo, err := invert(mapping)
	if err != nil {
		return Permutation{}, err
	}

	return Permutation{goesTo: goesTo, comesFrom: append([]int(nil), mapping...)}, nil
}

// FromCycles builds a Permutation of the given size from disjoint cycles.
// Each cycle is a sequence of facelet indices (a, b, c, ...) meaning a's
// content moves to b, b's to c, ..., and the last back to a. Facelets not
// mentioned in any cycle are fixed points.
func FromCycles(size int, cycles [][]int) (Permutation, error) {
	p := Identity(size)

	for _, cycle := range cycles {
		if len(cycle) == 0 {
			continue
		}

		for i, from := range cycle {
			if from < 0 || from >= size {
				return Permutation{}, ErrOutOfRange
			}

			to := cycle[(i+1)%len(cycle)]
			if to < 0 || to >= size {
				return Permutation{}, ErrOutOfRange
			}

			p.goesTo[from] = to
		}
	}

	comesFrom, err := invert(p.goesTo)
	if err != nil {
		return Permutation{}, err
	}
	p.comesFrom = comesFrom

	return p, nil
}

func invert(mapping []int) ([]int, error) {
	n := len(mapping)
	inv := make([]int, n)
	seen := make([]bool, n)

	for i, v := range mapping {
		if v < 0 || v >= n {
			return nil, ErrOutOfRange
		}
		if seen[v] {
			return nil, ErrNotBijective
		}
		seen[v] = true
		inv[v] = i
	}

	return inv, nil
}

// Len returns the facelet count F this permutation is defined over.
func (p Permutation) Len() int { return len(p.goesTo) }

// GoesTo returns the facelet that s's content moves to.
func (p Permutation) GoesTo(s int) int { return p.goesTo[s] }

// ComesFrom returns the facelet whose content now occupies position s.
func (p Permutation) ComesFrom(s int) int { return p.comesFrom[s] }

// Minimal returns the dense "goes to" mapping backing this permutation. The
// name and shape mirror the collaborator's own dense-mapping view, used to
// build orbit-restricted subgroups from generator mappings.
func (p Permutation) Minimal() []int {
	return append([]int(nil), p.goesTo...)
}

// Cycles decomposes this permutation's GoesTo mapping into disjoint,
// non-trivial cycles (fixed points are omitted).
func (p Permutation) Cycles() [][]int {
	n := len(p.goesTo)
	visited := make([]bool, n)
	var cycles [][]int

	for start := 0; start < n; start++ {
		if visited[start] || p.goesTo[start] == start {
			visited[start] = true
			continue
		}

		var cycle []int
		for cur := start; !visited[cur]; cur = p.goesTo[cur] {
			visited[cur] = true
			cycle = append(cycle, cur)
		}

		if len(cycle) > 1 {
			cycles = append(cycles, cycle)
		}
	}

	return cycles
}

// Compose returns the permutation obtained by applying a first and then b.
// Both must be defined over the same facelet count.
func Compose(a, b Permutation) Permutation {
	n := len(a.goesTo)
	goesTo := make([]int, n)
	for i := range goesTo {
		goesTo[i] = b.goesTo[a.goesTo[i]]
	}

	comesFrom := make([]int, n)
	for i := range comesFrom {
		comesFrom[i] = a.comesFrom[b.comesFrom[i]]
	}

	return Permutation{goesTo: goesTo, comesFrom: comesFrom}
}

// Inverse returns the permutation that undoes p.
func (p Permutation) Inverse() Permutation {
	return Permutation{goesTo: append([]int(nil), p.comesFrom...), comesFrom: append([]int(nil), p.goesTo...)}
}

// Equal reports whether p and other define the same mapping.
func (p Permutation) Equal(other Permutation) bool {
	if len(p.goesTo) != len(other.goesTo) {
		return false
	}

	for i, v := range p.goesTo {
		if other.goesTo[i] != v {
			return false
		}
	}

	return true
}
