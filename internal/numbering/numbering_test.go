package numbering

import (
	"testing"

	"github.com/coregx/rxcomb/internal/term"
)

func anySymbol() *term.Node {
	return term.Symbol(func(any) (any, bool) { return nil, false })
}

func TestNumberAssignsUniqueSequentialIDs(t *testing.T) {
	tree := term.Alt(
		term.App(anySymbol(), anySymbol()),
		anySymbol(),
	)

	numbered, count := Number(tree)
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}

	var ids []term.ThreadID
	var walk func(n *term.Node)
	walk = func(n *term.Node) {
		if n == nil {
			return
		}
		switch n.Kind {
		case term.KindSymbol:
			ids = append(ids, n.ID)
		case term.KindAlt, term.KindApp:
			walk(n.Left)
			walk(n.Right)
		case term.KindFmap, term.KindVoid:
			walk(n.Child)
		case term.KindRep:
			walk(n.RepChild)
		}
	}
	walk(numbered)

	if len(ids) != 3 {
		t.Fatalf("found %d Symbol nodes, want 3", len(ids))
	}
	seen := map[term.ThreadID]bool{}
	for i, id := range ids {
		if id == term.Unassigned {
			t.Errorf("numbered Symbol has Unassigned ID")
		}
		if id != term.ThreadID(i) {
			t.Errorf("pre-order Symbol %d has ThreadID %d, want %d", i, id, i)
		}
		if seen[id] {
			t.Errorf("duplicate ThreadID %d", id)
		}
		seen[id] = true
	}
}

func TestNumberDoesNotMutateSource(t *testing.T) {
	leaf := anySymbol()
	_, _ = Number(leaf)
	if leaf.ID != term.Unassigned {
		t.Error("Number must not mutate the source tree")
	}
}

func TestNumberIsDeterministicForIdenticalStructure(t *testing.T) {
	build := func() *term.Node {
		return term.Alt(anySymbol(), term.Void(anySymbol()))
	}

	n1, c1 := Number(build())
	n2, c2 := Number(build())

	if c1 != c2 {
		t.Fatalf("counts differ: %d vs %d", c1, c2)
	}
	if n1.Left.ID != n2.Left.ID {
		t.Errorf("left ids differ: %d vs %d", n1.Left.ID, n2.Left.ID)
	}
	if n1.Right.Child.ID != n2.Right.Child.ID {
		t.Errorf("right ids differ: %d vs %d", n1.Right.Child.ID, n2.Right.Child.ID)
	}
}

func TestNumberOnLeafOnlyTerm(t *testing.T) {
	numbered, count := Number(term.Eps())
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if numbered.Kind != term.KindEps {
		t.Errorf("Kind = %v, want KindEps", numbered.Kind)
	}
}
