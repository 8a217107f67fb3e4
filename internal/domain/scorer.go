package domain

import (
	"slices"
	"sort"

	m "github.com/mouse-blink/twins/internal/model"
)

// Scorer computes the similarity of two token sequences as a percentage.
type Scorer interface {
	Ratio(a, b m.TokenSequence) float64
}

type scorer struct{}

// NewScorer creates the block-alignment (Ratcliff/Obershelp) scorer.
func NewScorer() Scorer {
	return scorer{}
}

func (scorer) Ratio(a, b m.TokenSequence) float64 {
	return Ratio(a, b)
}

// Block is a run of Size equal elements starting at A in the first sequence
// and at B in the second.
type Block struct {
	A    int
	B    int
	Size int
}

// Ratio returns 2*M/(len(a)+len(b))*100 where M is the number of elements
// covered by the matching blocks. Two empty sequences are identical (100);
// one empty sequence against a non-empty one scores 0.
//
// The pair is aligned in a canonical orientation (shorter first, then
// lexicographic), so Ratio(a, b) == Ratio(b, a).
func Ratio(a, b m.TokenSequence) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return m.ExactScore
	}

	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	if swapOrientation(a, b) {
		a, b = b, a
	}

	matched := 0
	for _, block := range MatchingBlocks(a, b) {
		matched += block.Size
	}

	return float64(2*matched) / float64(total) * 100
}

func swapOrientation(a, b m.TokenSequence) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}

	return slices.Compare(a, b) > 0
}

// MatchingBlocks finds the longest common block, then recurses into the
// parts left and right of it. Among equally long blocks the one starting
// earliest in a wins, then the one starting earliest in b. Blocks are
// returned ordered by position.
func MatchingBlocks(a, b m.TokenSequence) []Block {
	index := make(map[m.Category][]int, len(m.Categories))
	for j, c := range b {
		index[c] = append(index[c], j)
	}

	type span struct{ alo, ahi, blo, bhi int }

	var blocks []Block

	queue := []span{{0, len(a), 0, len(b)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		block := longestMatch(a, index, s.alo, s.ahi, s.blo, s.bhi)
		if block.Size == 0 {
			continue
		}

		blocks = append(blocks, block)

		if s.alo < block.A && s.blo < block.B {
			queue = append(queue, span{s.alo, block.A, s.blo, block.B})
		}

		if block.A+block.Size < s.ahi && block.B+block.Size < s.bhi {
			queue = append(queue, span{block.A + block.Size, s.ahi, block.B + block.Size, s.bhi})
		}
	}

	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].A != blocks[j].A {
			return blocks[i].A < blocks[j].A
		}

		return blocks[i].B < blocks[j].B
	})

	return blocks
}

// longestMatch returns the longest block of a[alo:ahi] and b[blo:bhi].
// index maps each category to its ascending positions in b.
func longestMatch(a m.TokenSequence, index map[m.Category][]int, alo, ahi, blo, bhi int) Block {
	best := Block{A: alo, B: blo}

	// lengths[j] is the length of the match ending at a[i-1], b[j].
	lengths := map[int]int{}

	for i := alo; i < ahi; i++ {
		next := map[int]int{}

		for _, j := range index[a[i]] {
			if j < blo {
				continue
			}

			if j >= bhi {
				break
			}

			k := lengths[j-1] + 1
			next[j] = k

			if k > best.Size {
				best = Block{A: i - k + 1, B: j - k + 1, Size: k}
			}
		}

		lengths = next
	}

	return best
}
