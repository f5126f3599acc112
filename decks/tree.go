package decks

import (
	"github.com/andrewpaige1/studycards-api/models"
)

// DeckWithStats is a deck plus its derived counters and its direct children
// in the deck tree. Orphaned is set when the deck declared a parent that the
// build could not honor (missing parent row, or a parent cycle); such decks
// are kept as roots rather than dropped, and the flag lets the UI surface
// the anomaly.
type DeckWithStats struct {
	models.Deck
	Stats
	Orphaned bool             `json:"orphaned,omitempty"`
	SubDecks []*DeckWithStats `json:"sub_decks"`
}

// BuildTree links a flat slice of decks into a forest using each deck's
// ParentID. Runs in O(n): one pass to index nodes by row ID, one pass to
// attach each node to its parent or to the root list, and a reachability
// sweep that promotes members of parent cycles back to roots so no deck is
// ever lost. Root order and sibling order both follow input order.
func BuildTree(nodes []*DeckWithStats) []*DeckWithStats {
	byID := make(map[uint]*DeckWithStats, len(nodes))
	for _, node := range nodes {
		node.SubDecks = []*DeckWithStats{}
		byID[node.ID] = node
	}

	roots := []*DeckWithStats{}
	attachedTo := make(map[uint]*DeckWithStats, len(nodes))
	for _, node := range nodes {
		if node.ParentID != nil {
			if parent, ok := byID[*node.ParentID]; ok && parent != node {
				parent.SubDecks = append(parent.SubDecks, node)
				attachedTo[node.ID] = parent
				continue
			}
			// Declared parent is absent from the input set (or is the node
			// itself). Keep the deck visible as a root and flag it.
			node.Orphaned = true
		}
		roots = append(roots, node)
	}

	// A cycle among present parents (A→B→A) attaches every member to another
	// member, leaving the whole group unreachable from the roots. Promote the
	// first unreached member, in input order, detaching it from its parent so
	// the rendered structure stays acyclic and no deck is lost.
	reached := make(map[uint]bool, len(nodes))
	for _, root := range roots {
		markReached(root, reached)
	}
	for _, node := range nodes {
		if !reached[node.ID] {
			detach(attachedTo[node.ID], node)
			node.Orphaned = true
			roots = append(roots, node)
			markReached(node, reached)
		}
	}

	return roots
}

func detach(parent, child *DeckWithStats) {
	for i, sub := range parent.SubDecks {
		if sub == child {
			parent.SubDecks = append(parent.SubDecks[:i], parent.SubDecks[i+1:]...)
			return
		}
	}
}

func markReached(node *DeckWithStats, reached map[uint]bool) {
	if reached[node.ID] {
		return
	}
	reached[node.ID] = true
	for _, child := range node.SubDecks {
		markReached(child, reached)
	}
}
