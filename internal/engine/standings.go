// internal/engine/standings.go
// Standings and the Buchholz family of tie-break scores.

package engine

import "sort"

// Standings computes every active-or-not player's standing through the
// given round (0-based, inclusive) and returns them sorted by the
// cascade: score desc, median Buchholz desc, cut-one Buchholz desc,
// Buchholz desc, progressive desc.
func (t *Tournament) Standings(throughRound int) []PlayerStanding {
	limit := throughRound + 1
	if limit > len(t.Pairings) {
		limit = len(t.Pairings)
	}

	scores := make(map[uint32]uint32, len(t.Players))
	progressive := make(map[uint32]uint32, len(t.Players))

	roundScore := make(map[uint32]uint32)

	for round := 0; round < limit; round++ {
		for id, p := range t.Players {
			roundScore[id] = roundPoints(p.History[round])
		}
		for id := range t.Players {
			scores[id] += roundScore[id]
		}
	}

	// Progressive is the running cumulative sum, per round, summed again.
	cum := make(map[uint32]uint32, len(t.Players))
	for round := 0; round < limit; round++ {
		for id, p := range t.Players {
			cum[id] += roundPoints(p.History[round])
			progressive[id] += cum[id]
		}
	}

	opponentsOf := func(id uint32) []uint32 {
		var opps []uint32
		for round := 0; round < limit; round++ {
			item := t.Players[id].History[round]
			if item.Kind == KindGame {
				opps = append(opps, item.OpponentID)
			}
		}
		return opps
	}

	standings := make([]PlayerStanding, 0, len(t.Players))
	for id := range t.Players {
		opps := opponentsOf(id)
		oppScores := make([]uint32, 0, len(opps))
		for _, o := range opps {
			oppScores = append(oppScores, scores[o])
		}
		sort.Slice(oppScores, func(i, j int) bool { return oppScores[i] < oppScores[j] })

		buchholz := sumUint32(oppScores)
		cutOne := buchholz
		median := buchholz
		if len(oppScores) > 0 {
			cutOne -= oppScores[0]
		}
		if len(oppScores) > 1 {
			median -= oppScores[0]
			median -= oppScores[len(oppScores)-1]
		} else if len(oppScores) == 1 {
			median = 0
		}

		standings = append(standings, PlayerStanding{
			PlayerID:       id,
			Score:          scores[id],
			Buchholz:       buchholz,
			CutOneBuchholz: cutOne,
			MedianBuchholz: median,
			Progressive:    progressive[id],
		})
	}

	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.MedianBuchholz != b.MedianBuchholz {
			return a.MedianBuchholz > b.MedianBuchholz
		}
		if a.CutOneBuchholz != b.CutOneBuchholz {
			return a.CutOneBuchholz > b.CutOneBuchholz
		}
		if a.Buchholz != b.Buchholz {
			return a.Buchholz > b.Buchholz
		}
		if a.Progressive != b.Progressive {
			return a.Progressive > b.Progressive
		}
		return a.PlayerID < b.PlayerID
	})

	return standings
}

func roundPoints(item HistoryItem) uint32 {
	switch item.Kind {
	case KindNotPaired:
		return item.Score
	case KindBye:
		return 2
	case KindGame:
		switch {
		case item.Color == White && item.Result == WhiteWins:
			return 2
		case item.Color == White && item.Result == Draw:
			return 1
		case item.Color == Black && item.Result == Draw:
			return 1
		case item.Color == Black && item.Result == BlackWins:
			return 2
		}
	}
	return 0
}

func sumUint32(xs []uint32) uint32 {
	var s uint32
	for _, x := range xs {
		s += x
	}
	return s
}
