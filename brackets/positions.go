package brackets

import "sort"

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func log2(n int) int {
	r := 0
	for n > 1 {
		n >>= 1
		r++
	}
	return r
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// seedOrder lists the drawPositions 1..size in seeding priority. Seed 1 sits
// at the top and seed 2 at the bottom; each further block of seeds goes into
// the unseeded half of every seeded segment, on the same edge as the segment's
// seed at even depths and on the opposite edge at odd depths. For 32 this gives
// 1, 32, 9, 24, then 8, 25, 16, 17.
func seedOrder(size int) []int {
	if size < 1 {
		return nil
	}
	order := []int{1}
	atTop := []bool{true}
	for segment, depth := size, 1; segment > 1; segment, depth = segment/2, depth+1 {
		half := segment / 2
		n := len(order)
		for i := 0; i < n; i++ {
			pos := order[i]
			start := ((pos-1)/segment)*segment + 1
			other := start + half
			if pos >= start+half {
				other = start
			}
			top := atTop[i]
			if depth%2 == 1 {
				top = !top
			}
			placed := other
			if !top {
				placed = other + half - 1
			}
			order = append(order, placed)
			atTop = append(atTop, top)
		}
	}
	return order
}

func partner(drawPosition int) int {
	if drawPosition%2 == 1 {
		return drawPosition + 1
	}
	return drawPosition - 1
}

// byePositions places byes opposite the highest seeded positions.
func byePositions(size, byes int) []int {
	if byes <= 0 {
		return nil
	}
	order := seedOrder(size)
	positions := make([]int, 0, byes)
	for i := 0; i < byes && i < len(order); i++ {
		positions = append(positions, partner(order[i]))
	}
	sort.Ints(positions)
	return positions
}

// qualifierPositions reserves the lowest priority positions that are not byes.
func qualifierPositions(size, count int, byes []int) []int {
	if count <= 0 {
		return nil
	}
	isBye := make(map[int]bool, len(byes))
	for _, p := range byes {
		isBye[p] = true
	}
	order := seedOrder(size)
	positions := make([]int, 0, count)
	for i := len(order) - 1; i >= 0 && len(positions) < count; i-- {
		if !isBye[order[i]] {
			positions = append(positions, order[i])
		}
	}
	sort.Ints(positions)
	return positions
}

// circleRounds pairs group members round by round with the circle method.
// Indexes refer to members; an odd group gets a resting member each round.
func circleRounds(size int) [][][2]int {
	n := size
	if n%2 == 1 {
		n++
	}
	ring := make([]int, n)
	for i := range ring {
		ring[i] = i
	}
	rounds := make([][][2]int, 0, n-1)
	for r := 0; r < n-1; r++ {
		var pairs [][2]int
		for i := 0; i < n/2; i++ {
			a, b := ring[i], ring[n-1-i]
			if a >= size || b >= size {
				continue
			}
			if a > b {
				a, b = b, a
			}
			pairs = append(pairs, [2]int{a, b})
		}
		rounds = append(rounds, pairs)
		last := ring[n-1]
		copy(ring[2:], ring[1:n-1])
		ring[1] = last
	}
	return rounds
}
