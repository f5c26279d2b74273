package coset

import (
	"github.com/katalvlaran/sl2z/perm"
	"github.com/katalvlaran/sl2z/word"
)

// sylOf is the single-letter word syllable for a table letter.
func sylOf(x int) word.Syllable {
	switch x {
	case letS:
		return word.Syl(word.GenS, 1)
	case letSInv:
		return word.Syl(word.GenS, -1)
	case letT:
		return word.Syl(word.GenT, 1)
	default:
		return word.Syl(word.GenT, -1)
	}
}

// degreeOf is the number of cosets an action on s and t lives on.
func degreeOf(s, t perm.Perm) int {
	n := s.Degree()
	if t.Degree() > n {
		n = t.Degree()
	}
	if n == 0 {
		n = 1
	}
	return n
}

// Representatives returns one word per coset of the action (s, t),
// found by a breadth-first walk of the Schreier tree rooted at coset 0
// over the letters S, S⁻¹, T, T⁻¹ in that order. The representative of
// coset 0 is the empty word, and every returned word is freely
// reduced. The action must be transitive.
func Representatives(s, t perm.Perm) ([]word.Word, error) {
	reps, _, err := schreierTree(s, t)
	return reps, err
}

// schreierTree is the BFS behind Representatives. It also reports
// which table edges (coset, letter) the tree used, so Schreier
// generators can skip them.
func schreierTree(s, t perm.Perm) ([]word.Word, map[[2]int]bool, error) {
	n := degreeOf(s, t)
	if !perm.IsTransitive(n, s, t) {
		return nil, nil, ErrNotTransitive
	}
	images := [nLetters]perm.Perm{s, s.Inverse(), t, t.Inverse()}

	reps := make([]word.Word, n)
	seen := make([]bool, n)
	tree := make(map[[2]int]bool)
	reps[0] = word.Word{}
	seen[0] = true
	queue := []int{0}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for x := 0; x < nLetters; x++ {
			d := images[x].Image(c)
			if seen[d] {
				continue
			}
			seen[d] = true
			reps[d] = append(reps[c].Clone(), sylOf(x)).Reduced()
			tree[[2]int{c, x}] = true
			tree[[2]int{d, invLetter(x)}] = true
			queue = append(queue, d)
		}
	}
	return reps, tree, nil
}

// SchreierGenerators returns words generating the stabilizer of coset
// 0 in the action (s, t), i.e. the subgroup the action encodes. For
// each coset c and each generator g ∈ {S, T} off the Schreier tree it
// emits rep(c) · g · rep(c·g)⁻¹; tree edges yield the identity and are
// skipped, as are generators that freely reduce to the empty word.
func SchreierGenerators(s, t perm.Perm) ([]word.Word, error) {
	reps, tree, err := schreierTree(s, t)
	if err != nil {
		return nil, err
	}
	images := map[int]perm.Perm{letS: s, letT: t}

	var gens []word.Word
	for c := range reps {
		for _, x := range []int{letS, letT} {
			if tree[[2]int{c, x}] {
				continue
			}
			d := images[x].Image(c)
			w := append(reps[c].Clone(), sylOf(x))
			w = append(w, reps[d].Inverse()...)
			if w = w.Reduced(); len(w) > 0 {
				gens = append(gens, w)
			}
		}
	}
	return gens, nil
}
