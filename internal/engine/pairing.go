// internal/engine/pairing.go
// The Swiss pairing builder: bye selection, feasibility graph
// construction, the edge-weight objective, maximum-weight matching, and
// color assignment for both the first and subsequent rounds.

package engine

import "sort"

const forbiddenEdgeWeight = -10_000_000

// PreparePairings computes the next round's pairings for t, or returns
// an error if the tournament cannot advance.
func PreparePairings(t *Tournament, firstColor Color) (NewPairings, error) {
	if t.EndDate != nil {
		return NewPairings{}, ErrTournamentEnded
	}
	round := uint32(t.CurrentRound())
	if int(round) > 0 {
		for _, r := range t.Results[round-1] {
			if r == Ongoing {
				return NewPairings{}, ErrRoundNotDone
			}
		}
	}
	if int(round) >= t.NumRounds {
		return NewPairings{}, ErrTournamentEnded
	}

	active := t.activePlayerIDs()
	if len(active) < 2 {
		return NewPairings{}, ErrInsufficientPlayers
	}

	byePlayer, hasBye := t.selectBye(active)
	pairable := active
	if hasBye {
		pairable = removeID(active, byePlayer)
	}

	groups := t.groupPlayersByScore()
	edges := t.buildFeasibilityEdges(pairable, groups)

	idToIndex := make(map[uint32]int, len(pairable))
	indexToID := make([]uint32, len(pairable))
	for i, id := range pairable {
		idToIndex[id] = i
		indexToID[i] = id
	}
	wedges := make([]WeightedEdge, 0, len(edges))
	for _, e := range edges {
		wedges = append(wedges, WeightedEdge{U: idToIndex[e.a], V: idToIndex[e.b], Weight: e.weight})
	}

	mate := MaxWeightMatching(len(pairable), wedges)

	var matchedPairs [][2]uint32
	matchedSet := make(map[uint32]bool)
	var floats []uint32
	for i, m := range mate {
		if m == noVertex || m <= i {
			continue
		}
		a, b := indexToID[i], indexToID[m]
		matchedPairs = append(matchedPairs, [2]uint32{a, b})
		matchedSet[a] = true
		matchedSet[b] = true

		sa, sb := t.Players[a].TournamentScore(), t.Players[b].TournamentScore()
		if sa > sb {
			floats = append(floats, b)
		} else if sb > sa {
			floats = append(floats, a)
		}
	}
	sort.Slice(floats, func(i, j int) bool { return floats[i] < floats[j] })

	var result NewPairings
	result.Round = round

	// Colors are assigned in matched order, before board ordering.
	if round == 0 {
		result.Pairings = t.colorFirstRound(matchedPairs, firstColor)
	} else {
		result.Pairings = t.colorNextRound(matchedPairs)
	}

	// Order boards by (max score desc, min score desc, min tpn asc) so
	// board numbers run from the strongest group down.
	sort.Slice(result.Pairings, func(i, j int) bool {
		pi := [2]uint32{result.Pairings[i].WhiteID, result.Pairings[i].BlackID}
		pj := [2]uint32{result.Pairings[j].WhiteID, result.Pairings[j].BlackID}
		maxI, minI := t.pairScores(pi)
		maxJ, minJ := t.pairScores(pj)
		if maxI != maxJ {
			return maxI > maxJ
		}
		if minI != minJ {
			return minI > minJ
		}
		tpnI := minInt(t.PlayerTPN(pi[0]), t.PlayerTPN(pi[1]))
		tpnJ := minInt(t.PlayerTPN(pj[0]), t.PlayerTPN(pj[1]))
		return tpnI < tpnJ
	})

	for i := range result.Pairings {
		result.Pairings[i].TournamentID = t.ID
		result.Pairings[i].Round = round
		result.Pairings[i].Board = uint32(i)
	}

	for _, id := range active {
		if hasBye && id == byePlayer {
			result.Gaps = append(result.Gaps, NewGapRow{PlayerID: id, TournamentID: t.ID, Round: round, IsBye: true})
			continue
		}
		if !matchedSet[id] {
			result.Gaps = append(result.Gaps, NewGapRow{PlayerID: id, TournamentID: t.ID, Round: round, Score: 0, IsBye: false})
		}
	}

	result.Floats = floats
	if len(result.Pairings) == 0 {
		return NewPairings{}, ErrEmptyPairingsGenerated
	}
	return result, nil
}

func (t *Tournament) pairScores(pair [2]uint32) (max, min uint32) {
	s1 := t.Players[pair[0]].TournamentScore()
	s2 := t.Players[pair[1]].TournamentScore()
	if s1 >= s2 {
		return s1, s2
	}
	return s2, s1
}

func (t *Tournament) activePlayerIDs() []uint32 {
	ids := make([]uint32, 0, len(t.Players))
	for _, id := range t.orderedPlayerIDs() {
		if t.Players[id].Status == Active {
			ids = append(ids, id)
		}
	}
	return ids
}

func removeID(ids []uint32, target uint32) []uint32 {
	out := make([]uint32, 0, len(ids)-1)
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

// selectBye picks a bye recipient when the active player count is odd.
// All active players are candidates; the composite sort key is
// (byes desc, score desc, tpn asc), and the last entry (fewest byes,
// lowest score, highest tpn) receives the bye.
func (t *Tournament) selectBye(active []uint32) (uint32, bool) {
	if len(active)%2 == 0 {
		return 0, false
	}
	candidates := make([]uint32, len(active))
	copy(candidates, active)
	sort.Slice(candidates, func(i, j int) bool {
		pi, pj := t.Players[candidates[i]], t.Players[candidates[j]]
		bi, bj := pi.ByeCount(), pj.ByeCount()
		if bi != bj {
			return bi > bj
		}
		si, sj := pi.TournamentScore(), pj.TournamentScore()
		if si != sj {
			return si > sj
		}
		return t.PlayerTPN(candidates[i]) < t.PlayerTPN(candidates[j])
	})
	return candidates[len(candidates)-1], true
}

type feasibilityEdge struct {
	a, b   uint32
	weight int64
}

// buildFeasibilityEdges constructs every candidate pairing edge among
// pairable players (excluding players who have already played each
// other) with its objective weight.
func (t *Tournament) buildFeasibilityEdges(pairable []uint32, groups map[uint32]*scoreGroup) []feasibilityEdge {
	var edges []feasibilityEdge

	lowestScore := uint32(0)
	first := true
	for score := range groups {
		if first || score < lowestScore {
			lowestScore = score
			first = false
		}
	}

	for i := 0; i < len(pairable); i++ {
		for j := i + 1; j < len(pairable); j++ {
			a, b := pairable[i], pairable[j]
			pa := t.Players[a]
			if pa.HasPlayed(b) {
				continue
			}
			w := t.edgeWeight(a, b, groups, lowestScore)
			edges = append(edges, feasibilityEdge{a: a, b: b, weight: w})
		}
	}

	return edges
}

func scorePenalty(delta uint32) int64 {
	switch delta {
	case 0:
		return 0
	case 1:
		return 80
	case 2:
		return 570
	case 3:
		return 1350
	case 4:
		return 2250
	default:
		return 2250 + 200*int64(delta)
	}
}

// edgeWeight is the calibrated pairing objective: higher is better. When
// both players played their last two games in the same color, the edge
// gets forbiddenEdgeWeight; it stays in the graph, so a matcher that
// maximizes cardinality first can still choose it.
func (t *Tournament) edgeWeight(a, b uint32, groups map[uint32]*scoreGroup, lowestScore uint32) int64 {
	pa, pb := t.Players[a], t.Players[b]

	ca, cb := lastTwoSameColor(pa), lastTwoSameColor(pb)
	if ca != nil && cb != nil && *ca == *cb {
		return forbiddenEdgeWeight
	}

	sa, sb := pa.TournamentScore(), pb.TournamentScore()
	var delta uint32
	if sa >= sb {
		delta = sa - sb
	} else {
		delta = sb - sa
	}

	weight := int64(5000)
	weight -= scorePenalty(delta)
	weight += int64(sa+sb) * 5

	la, lb := lastColor(pa), lastColor(pb)
	if la != nil && lb != nil && *la == *lb {
		weight -= 10
	}

	if sa == sb {
		ga, gb := groups[sa], groups[sb]
		if ga != nil && gb == nil {
			gb = ga
		}
		if ga != nil {
			size := len(ga.members)
			rankA, _ := rankWithin(ga, a)
			rankB, _ := rankWithin(ga, b)
			dist := rankB - rankA
			if dist < 0 {
				dist = -dist
			}
			half := size / 2
			dev := dist - half
			if dev < 0 {
				dev = -dev
			}
			weight -= int64(dev) * 5
		}
	}

	weight -= int64(pa.Floats+pb.Floats) * 20

	if sa != lowestScore && sb != lowestScore {
		maxSize := len(groups[sa].members)
		if groups[sb] != nil && len(groups[sb].members) > maxSize {
			maxSize = len(groups[sb].members)
		}
		if maxSize > 0 {
			weight += 200 / int64(maxSize)
		}
	}

	if sa != sb {
		var highScore uint32
		var highID uint32
		if sa > sb {
			highScore, highID = sa, a
		} else {
			highScore, highID = sb, b
		}
		if g, ok := groups[highScore]; ok {
			rank, size := rankWithin(g, highID)
			if rank >= 0 {
				weight -= int64(size-1-rank) * 10
			}
		}
	}

	return weight
}

// lastColor returns the color of the player's most recent game, or nil
// if they have never played a colored game.
func lastColor(p *Player) *Color {
	colors := p.ColorHistory()
	if len(colors) == 0 {
		return nil
	}
	c := colors[len(colors)-1]
	return &c
}

// lastTwoSameColor returns the color the player played in their last two
// games if those two games were the same color, otherwise nil.
func lastTwoSameColor(p *Player) *Color {
	colors := p.ColorHistory()
	if len(colors) < 2 {
		return nil
	}
	last, prev := colors[len(colors)-1], colors[len(colors)-2]
	if last == prev {
		return &last
	}
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// colorFirstRound alternates colors over the pairs in matched order,
// starting with firstColor: in each pair the lower id plays the color
// assigned to that pair and the higher id plays the other one.
func (t *Tournament) colorFirstRound(pairs [][2]uint32, firstColor Color) []NewPairingRow {
	rows := make([]NewPairingRow, 0, len(pairs))
	color := firstColor
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		var white, black uint32
		if color == White {
			white, black = lo, hi
		} else {
			white, black = hi, lo
		}
		rows = append(rows, NewPairingRow{WhiteID: white, BlackID: black})
		color = color.Other()
	}
	return rows
}

// colorNextRound assigns colors for round 2+ per the history-based rule:
// absent/absent keeps pair order, one absent plays the opposite of the
// present player's last color, and both present resolves by last color
// then by color balance then by TPN.
func (t *Tournament) colorNextRound(pairs [][2]uint32) []NewPairingRow {
	rows := make([]NewPairingRow, 0, len(pairs))
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		pa, pb := t.Players[a], t.Players[b]
		la, lb := lastColor(pa), lastColor(pb)

		var white, black uint32
		switch {
		case la == nil && lb == nil:
			white, black = a, b
		case la == nil && lb != nil:
			if *lb == White {
				white, black = a, b
			} else {
				white, black = b, a
			}
		case la != nil && lb == nil:
			if *la == White {
				white, black = b, a
			} else {
				white, black = a, b
			}
		default:
			if *la != *lb {
				if *la == White {
					white, black = b, a
				} else {
					white, black = a, b
				}
			} else {
				balanceA, balanceB := colorBalance(pa), colorBalance(pb)
				switch {
				case balanceA > balanceB:
					white, black = b, a
				case balanceB > balanceA:
					white, black = a, b
				default:
					if t.PlayerTPN(a) < t.PlayerTPN(b) {
						white, black = a, b
					} else {
						white, black = b, a
					}
				}
			}
		}
		rows = append(rows, NewPairingRow{WhiteID: white, BlackID: black})
	}
	return rows
}

// colorBalance sums +1 for every White game and -1 for every Black game
// in the player's history.
func colorBalance(p *Player) int {
	balance := 0
	for _, col := range p.ColorHistory() {
		if col == White {
			balance++
		} else {
			balance--
		}
	}
	return balance
}
