// sl2z inspects a finite-index subgroup of SL(2,ℤ) described in a
// small YAML document, read from a file or stdin.
//
// The document names the subgroup either by its coset action,
//
//	degree: 3
//	s: [[2, 3]]
//	t: [[1, 2]]
//
// with cycles on 1-based points, or by generating matrices in
// row-major order,
//
//	generators:
//	  - [-1, 0, 0, -1]
//	  - [1, 2, 0, 1]
//	  - [1, 0, 2, 1]
//
// in which case a coset enumeration recovers the action (bounded by
// --max-cosets). The report covers the index, -I membership, the
// generalized level, the congruence test, and one cusp per class with
// its width.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sl2z/coset"
	"github.com/katalvlaran/sl2z/modgroup"
	"github.com/katalvlaran/sl2z/perm"
	"github.com/katalvlaran/sl2z/sl2"
)

// description is the YAML shape of a subgroup.
type description struct {
	Degree     int       `yaml:"degree"`
	S          [][]int   `yaml:"s"`
	T          [][]int   `yaml:"t"`
	Generators [][]int64 `yaml:"generators"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var input string
	var maxCosets int

	flags := pflag.NewFlagSet("sl2z", pflag.ContinueOnError)
	flags.StringVar(&input, "input", "", "YAML subgroup description (default: stdin)")
	flags.IntVar(&maxCosets, "max-cosets", coset.DefaultMaxCosets,
		"coset budget when enumerating from generators")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if args := flags.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	data, err := readInput(input)
	if err != nil {
		return err
	}
	var desc description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return fmt.Errorf("parse description: %w", err)
	}

	g, err := build(desc, maxCosets)
	if err != nil {
		return err
	}
	return report(os.Stdout, g)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// build turns a description into a Subgroup, from whichever of the
// two shapes it carries.
func build(desc description, maxCosets int) (*modgroup.Subgroup, error) {
	hasAction := desc.S != nil || desc.T != nil
	switch {
	case len(desc.Generators) > 0 && hasAction:
		return nil, errors.New("give either s/t cycles or generators, not both")

	case len(desc.Generators) > 0:
		gens := make([]sl2.Matrix, len(desc.Generators))
		for i, e := range desc.Generators {
			if len(e) != 4 {
				return nil, fmt.Errorf("generator %d: want 4 entries [a, b, c, d], got %d", i, len(e))
			}
			m, err := sl2.New(e[0], e[1], e[2], e[3])
			if err != nil {
				return nil, fmt.Errorf("generator %d: %w", i, err)
			}
			gens[i] = m
		}
		return modgroup.NewFromGenerators(gens, modgroup.WithMaxCosets(maxCosets))

	case hasAction:
		s, err := perm.FromCycles(desc.Degree, desc.S)
		if err != nil {
			return nil, fmt.Errorf("s: %w", err)
		}
		t, err := perm.FromCycles(desc.Degree, desc.T)
		if err != nil {
			return nil, fmt.Errorf("t: %w", err)
		}
		return modgroup.New(s, t)

	default:
		return nil, errors.New("the description names neither an action nor generators")
	}
}

func report(w io.Writer, g *modgroup.Subgroup) error {
	fmt.Fprintf(w, "index: %d\n", g.Index())
	fmt.Fprintf(w, "contains -I: %v\n", g.IsEven())

	lvl, err := g.GeneralizedLevel()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "generalized level: %s\n", lvl)

	cong, err := g.IsCongruence()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "congruence: %v\n", cong)

	cusps, err := g.Cusps()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "cusps (%d):\n", len(cusps))
	for _, c := range cusps {
		width, err := g.CuspWidth(c)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s  width %s\n", c, width)
	}
	return nil
}
