// internal/engine/assembly.go
// Assembles the in-memory Tournament Model out of flat persisted rows.

package engine

import "sort"

// TournamentRow is the tournaments table row needed to assemble a model.
type TournamentRow struct {
	ID            uint32
	Name          string
	CurrentRound  int
	NumRounds     int
	TimeCategory  string
	Federation    string
	StartDate     uint32
	EndDate       *uint32
	URL           *string
	UserID        uint32
	Username      string
	UpdatedAt     uint32
}

// RegistrationRow is a registrations row joined with its player record.
type RegistrationRow struct {
	ID         uint32
	PlayerID   uint32
	Name       string
	Rating     uint32
	Title      string
	Floats     uint32
	FideID     *uint32
	Federation *string
	Status     string
}

// PairingRow is a committed pairings row.
type PairingRow struct {
	RoundNumber uint32
	BoardNumber uint32
	WhiteID     uint32
	BlackID     uint32
	Result      *string // nil => Ongoing
}

// PairingGapRow is a pairing_gaps row.
type PairingGapRow struct {
	PlayerID uint32
	RoundID  uint32
	Score    uint32
	IsBye    bool
}

// TournamentData bundles the four flat row sets §4.1 assembles from.
type TournamentData struct {
	Tournament    TournamentRow
	Registrations []RegistrationRow
	Pairings      []PairingRow
	Gaps          []PairingGapRow
}

// BuildTournament assembles a Tournament Model from flat persisted rows.
func BuildTournament(data TournamentData) *Tournament {
	rounds := data.Tournament.CurrentRound

	players := make(map[uint32]*Player, len(data.Registrations))
	for _, r := range data.Registrations {
		status, ok := ParsePlayerStatus(r.Status)
		if !ok {
			status = Active
		}
		history := make([]HistoryItem, rounds)
		for i := range history {
			history[i] = NotPaired(0)
		}
		players[r.ID] = &Player{
			ID:         r.ID,
			SourceID:   r.PlayerID,
			Name:       r.Name,
			Rating:     r.Rating,
			Title:      ParseTitle(r.Title),
			History:    history,
			Floats:     r.Floats,
			FideID:     r.FideID,
			Federation: r.Federation,
			Status:     status,
		}
	}

	byes := make([][]uint32, rounds)
	for i := range byes {
		byes[i] = []uint32{}
	}

	for _, gap := range data.Gaps {
		player, ok := players[gap.PlayerID]
		if !ok || int(gap.RoundID) >= rounds {
			continue
		}
		if gap.IsBye {
			byes[gap.RoundID] = append(byes[gap.RoundID], gap.PlayerID)
			player.History[gap.RoundID] = Bye()
		} else {
			player.History[gap.RoundID] = NotPaired(gap.Score)
		}
	}

	type boardResult struct {
		board  uint32
		result GameResult
	}
	resultsByRound := make([][]boardResult, rounds)
	pairsByRound := make([][][3]uint32, rounds) // board, white, black

	for _, p := range data.Pairings {
		if int(p.RoundNumber) >= rounds {
			continue
		}
		result := Ongoing
		if p.Result != nil {
			result = ParseGameResult(*p.Result)
		}
		resultsByRound[p.RoundNumber] = append(resultsByRound[p.RoundNumber], boardResult{p.BoardNumber, result})
		pairsByRound[p.RoundNumber] = append(pairsByRound[p.RoundNumber], [3]uint32{p.BoardNumber, p.WhiteID, p.BlackID})

		if white, ok := players[p.WhiteID]; ok {
			white.History[p.RoundNumber] = Game(p.BlackID, White, result)
		}
		if black, ok := players[p.BlackID]; ok {
			black.History[p.RoundNumber] = Game(p.WhiteID, Black, result)
		}
	}

	pairings := make([][][2]uint32, rounds)
	results := make([][]GameResult, rounds)
	for round := 0; round < rounds; round++ {
		pairs := pairsByRound[round]
		sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
		rowPairings := make([][2]uint32, len(pairs))
		for i, p := range pairs {
			rowPairings[i] = [2]uint32{p[1], p[2]}
		}
		pairings[round] = rowPairings

		res := resultsByRound[round]
		sort.Slice(res, func(i, j int) bool { return res[i].board < res[j].board })
		rowResults := make([]GameResult, len(res))
		for i, r := range res {
			rowResults[i] = r.result
		}
		results[round] = rowResults
	}

	return &Tournament{
		ID:           data.Tournament.ID,
		Name:         data.Tournament.Name,
		TimeCategory: data.Tournament.TimeCategory,
		Players:      players,
		Pairings:     pairings,
		Byes:         byes,
		Results:      results,
		NumRounds:    data.Tournament.NumRounds,
		StartDate:    data.Tournament.StartDate,
		Federation:   data.Tournament.Federation,
		UserID:       data.Tournament.UserID,
		Username:     data.Tournament.Username,
		UpdatedAt:    data.Tournament.UpdatedAt,
		EndDate:      data.Tournament.EndDate,
		URL:          data.Tournament.URL,
	}
}
