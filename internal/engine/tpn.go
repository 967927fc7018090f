// internal/engine/tpn.go
// Tournament Pairing Number seeding and score-group partitioning.

package engine

import "sort"

// orderedPlayerIDs returns every player id ranked by TPN: rating
// descending, then title ascending (Untitled first, per the Title enum
// order), ties broken by id for determinism.
func (t *Tournament) orderedPlayerIDs() []uint32 {
	ids := make([]uint32, 0, len(t.Players))
	for id := range t.Players {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		pi, pj := t.Players[ids[i]], t.Players[ids[j]]
		if pi.Rating != pj.Rating {
			return pi.Rating > pj.Rating
		}
		if pi.Title != pj.Title {
			return pi.Title < pj.Title
		}
		return ids[i] < ids[j]
	})
	return ids
}

// PlayerTPN returns the player's index in the global TPN ranking.
func (t *Tournament) PlayerTPN(playerID uint32) int {
	for i, id := range t.orderedPlayerIDs() {
		if id == playerID {
			return i
		}
	}
	return -1
}

// scoreGroup is a set of players tied at the same tournament score,
// ranked by TPN ascending.
type scoreGroup struct {
	score   uint32
	members []uint32 // player ids, TPN order
}

// groupPlayersByScore partitions active players by tournament score.
func (t *Tournament) groupPlayersByScore() map[uint32]*scoreGroup {
	groups := make(map[uint32]*scoreGroup)
	for _, id := range t.orderedPlayerIDs() {
		p := t.Players[id]
		if p.Status != Active {
			continue
		}
		score := p.TournamentScore()
		g, ok := groups[score]
		if !ok {
			g = &scoreGroup{score: score}
			groups[score] = g
		}
		g.members = append(g.members, id)
	}
	return groups
}

// rankWithin returns the player's 0-based position inside its score
// group and the group's size.
func rankWithin(g *scoreGroup, playerID uint32) (rank, size int) {
	size = len(g.members)
	for i, id := range g.members {
		if id == playerID {
			return i, size
		}
	}
	return -1, size
}
