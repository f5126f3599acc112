package decks

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gorm.io/gorm"

	"github.com/andrewpaige1/studycards-api/models"
)

func deckNode(id uint, name string, parentID *uint) *DeckWithStats {
	return &DeckWithStats{
		Deck: models.Deck{
			Model:    gorm.Model{ID: id},
			PublicID: name,
			Name:     name,
			ParentID: parentID,
		},
	}
}

func ptr(id uint) *uint { return &id }

// shape flattens a forest into "name[children...]" strings for comparison.
func shape(forest []*DeckWithStats) []string {
	out := make([]string, 0, len(forest))
	for _, node := range forest {
		s := node.Name
		if len(node.SubDecks) > 0 {
			s += "["
			for i, child := range shape(node.SubDecks) {
				if i > 0 {
					s += " "
				}
				s += child
			}
			s += "]"
		}
		out = append(out, s)
	}
	return out
}

func TestBuildTreeFlatDecks(t *testing.T) {
	forest := BuildTree([]*DeckWithStats{
		deckNode(1, "a", nil),
		deckNode(2, "b", nil),
		deckNode(3, "c", nil),
	})

	if diff := cmp.Diff([]string{"a", "b", "c"}, shape(forest)); diff != "" {
		t.Errorf("forest mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTreeNested(t *testing.T) {
	forest := BuildTree([]*DeckWithStats{
		deckNode(1, "a", nil),
		deckNode(2, "b", ptr(1)),
		deckNode(3, "c", ptr(2)),
	})

	if diff := cmp.Diff([]string{"a[b[c]]"}, shape(forest)); diff != "" {
		t.Errorf("forest mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTreeOrderIndependent(t *testing.T) {
	// The a->b->c chain must come out the same under every input permutation.
	build := func(order ...uint) []string {
		parents := map[uint]*uint{1: nil, 2: ptr(1), 3: ptr(2)}
		names := map[uint]string{1: "a", 2: "b", 3: "c"}
		nodes := make([]*DeckWithStats, 0, len(order))
		for _, id := range order {
			nodes = append(nodes, deckNode(id, names[id], parents[id]))
		}
		return shape(BuildTree(nodes))
	}

	want := []string{"a[b[c]]"}
	for _, order := range [][]uint{
		{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1},
	} {
		if diff := cmp.Diff(want, build(order...)); diff != "" {
			t.Errorf("order %v: forest mismatch (-want +got):\n%s", order, diff)
		}
	}
}

func TestBuildTreeSiblingOrder(t *testing.T) {
	forest := BuildTree([]*DeckWithStats{
		deckNode(1, "parent", nil),
		deckNode(4, "z", ptr(1)),
		deckNode(2, "m", ptr(1)),
		deckNode(3, "a", ptr(1)),
	})

	if diff := cmp.Diff([]string{"parent[z m a]"}, shape(forest)); diff != "" {
		t.Errorf("sibling order not input order (-want +got):\n%s", diff)
	}
}

func TestBuildTreeMissingParentBecomesRoot(t *testing.T) {
	orphan := deckNode(2, "orphan", ptr(99))
	forest := BuildTree([]*DeckWithStats{
		deckNode(1, "a", nil),
		orphan,
	})

	if diff := cmp.Diff([]string{"a", "orphan"}, shape(forest)); diff != "" {
		t.Errorf("forest mismatch (-want +got):\n%s", diff)
	}
	if !orphan.Orphaned {
		t.Errorf("deck with missing parent not flagged as orphaned")
	}
}

func TestBuildTreeSelfParent(t *testing.T) {
	node := deckNode(1, "self", ptr(1))
	forest := BuildTree([]*DeckWithStats{node})

	if diff := cmp.Diff([]string{"self"}, shape(forest)); diff != "" {
		t.Errorf("forest mismatch (-want +got):\n%s", diff)
	}
	if !node.Orphaned {
		t.Errorf("self-parented deck not flagged")
	}
}

func TestBuildTreeParentCycle(t *testing.T) {
	// a->b->a should never drop either deck or produce a cyclic structure.
	a := deckNode(1, "a", ptr(2))
	b := deckNode(2, "b", ptr(1))
	forest := BuildTree([]*DeckWithStats{a, b})

	if diff := cmp.Diff([]string{"a[b]"}, shape(forest)); diff != "" {
		t.Errorf("forest mismatch (-want +got):\n%s", diff)
	}
	if !a.Orphaned {
		t.Errorf("promoted cycle member not flagged")
	}
	if len(b.SubDecks) != 0 {
		t.Errorf("promoted node still attached under its former parent")
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	if got := BuildTree(nil); len(got) != 0 {
		t.Errorf("BuildTree(nil) = %v, want empty", got)
	}
}
