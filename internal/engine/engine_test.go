package engine

import "testing"

func newTestTournament(numPlayers int) *Tournament {
	players := make(map[uint32]*Player, numPlayers)
	for i := 1; i <= numPlayers; i++ {
		players[uint32(i)] = &Player{
			ID:     uint32(i),
			Name:   "player",
			Rating: uint32(2000 - i),
			Status: Active,
		}
	}
	return &Tournament{
		ID:           1,
		Name:         "test",
		TimeCategory: "standard",
		Players:      players,
		NumRounds:    5,
	}
}

func TestTournamentScoreAccumulatesDoubledPoints(t *testing.T) {
	p := &Player{
		History: []HistoryItem{
			Game(2, White, WhiteWins),
			Game(2, Black, Draw),
			Bye(),
			NotPaired(0),
		},
	}
	if got := p.TournamentScore(); got != 5 {
		t.Fatalf("TournamentScore() = %d, want 5", got)
	}
}

func TestByeCountOnlyCountsByes(t *testing.T) {
	p := &Player{History: []HistoryItem{Bye(), Game(2, White, Draw), Bye()}}
	if got := p.ByeCount(); got != 2 {
		t.Fatalf("ByeCount() = %d, want 2", got)
	}
}

func TestHasPlayedFindsPastOpponent(t *testing.T) {
	p := &Player{History: []HistoryItem{Game(7, White, WhiteWins)}}
	if !p.HasPlayed(7) {
		t.Fatal("HasPlayed(7) = false, want true")
	}
	if p.HasPlayed(8) {
		t.Fatal("HasPlayed(8) = true, want false")
	}
}

func TestPlayerTPNOrdersByRatingThenTitleThenID(t *testing.T) {
	tr := newTestTournament(3)
	tr.Players[1].Rating = 1500
	tr.Players[2].Rating = 1800
	tr.Players[3].Rating = 1800
	tr.Players[2].Title = GM
	tr.Players[3].Title = Untitled

	if got := tr.PlayerTPN(3); got != 0 {
		t.Fatalf("PlayerTPN(3) = %d, want 0 (untitled beats titled at equal rating)", got)
	}
	if got := tr.PlayerTPN(2); got != 1 {
		t.Fatalf("PlayerTPN(2) = %d, want 1", got)
	}
	if got := tr.PlayerTPN(1); got != 2 {
		t.Fatalf("PlayerTPN(1) = %d, want 2", got)
	}
}

func TestFirstRoundPreparePairingsProducesOneBoardPerPair(t *testing.T) {
	tr := newTestTournament(4)
	result, err := PreparePairings(tr, White)
	if err != nil {
		t.Fatalf("PreparePairings() error = %v", err)
	}
	if len(result.Pairings) != 2 {
		t.Fatalf("len(Pairings) = %d, want 2", len(result.Pairings))
	}
	seen := make(map[uint32]bool)
	for _, row := range result.Pairings {
		if seen[row.WhiteID] || seen[row.BlackID] {
			t.Fatalf("player paired twice in round: %+v", row)
		}
		seen[row.WhiteID] = true
		seen[row.BlackID] = true
	}
	if len(seen) != 4 {
		t.Fatalf("paired %d distinct players, want 4", len(seen))
	}
}

func TestPreparePairingsAssignsByeToOddPlayerCount(t *testing.T) {
	tr := newTestTournament(5)
	result, err := PreparePairings(tr, White)
	if err != nil {
		t.Fatalf("PreparePairings() error = %v", err)
	}
	if len(result.Pairings) != 2 {
		t.Fatalf("len(Pairings) = %d, want 2", len(result.Pairings))
	}
	byeCount := 0
	for _, g := range result.Gaps {
		if g.IsBye {
			byeCount++
		}
	}
	if byeCount != 1 {
		t.Fatalf("bye count = %d, want 1", byeCount)
	}
}

func TestPreparePairingsRejectsRematch(t *testing.T) {
	tr := newTestTournament(4)
	tr.Players[1].History = []HistoryItem{Game(2, White, WhiteWins)}
	tr.Players[2].History = []HistoryItem{Game(1, Black, WhiteWins)}
	tr.Players[3].History = []HistoryItem{Game(4, White, Draw)}
	tr.Players[4].History = []HistoryItem{Game(3, Black, Draw)}
	tr.Pairings = [][][2]uint32{{{1, 2}, {3, 4}}}
	tr.Results = [][]GameResult{{WhiteWins, Draw}}
	tr.Byes = [][]uint32{{}}

	result, err := PreparePairings(tr, White)
	if err != nil {
		t.Fatalf("PreparePairings() error = %v", err)
	}
	for _, row := range result.Pairings {
		if (row.WhiteID == 1 && row.BlackID == 2) || (row.WhiteID == 2 && row.BlackID == 1) {
			t.Fatal("rematch of players 1 and 2 was paired")
		}
		if (row.WhiteID == 3 && row.BlackID == 4) || (row.WhiteID == 4 && row.BlackID == 3) {
			t.Fatal("rematch of players 3 and 4 was paired")
		}
	}
}

func TestPreparePairingsErrorsWhenTournamentEnded(t *testing.T) {
	tr := newTestTournament(4)
	end := uint32(12345)
	tr.EndDate = &end
	if _, err := PreparePairings(tr, White); err != ErrTournamentEnded {
		t.Fatalf("PreparePairings() error = %v, want ErrTournamentEnded", err)
	}
}

func TestPreparePairingsErrorsWhenRoundStillOngoing(t *testing.T) {
	tr := newTestTournament(4)
	tr.Pairings = [][][2]uint32{{{1, 2}, {3, 4}}}
	tr.Results = [][]GameResult{{Ongoing, Draw}}
	tr.Byes = [][]uint32{{}}
	if _, err := PreparePairings(tr, White); err != ErrRoundNotDone {
		t.Fatalf("PreparePairings() error = %v, want ErrRoundNotDone", err)
	}
}

func TestApplyResultUpdatesBothPlayersHistory(t *testing.T) {
	tr := newTestTournament(4)
	tr.Pairings = [][][2]uint32{{{1, 2}, {3, 4}}}
	tr.Results = [][]GameResult{{Ongoing, Ongoing}}
	tr.Byes = [][]uint32{{}}
	tr.Players[1].History = []HistoryItem{Game(2, White, Ongoing)}
	tr.Players[2].History = []HistoryItem{Game(1, Black, Ongoing)}

	results, err := ApplyResult(tr, 0, 0, WhiteWins)
	if err != nil {
		t.Fatalf("ApplyResult() error = %v", err)
	}
	if results[0] != WhiteWins {
		t.Fatalf("Results[0] = %v, want WhiteWins", results[0])
	}
	if tr.Players[1].History[0].Result != WhiteWins {
		t.Fatalf("white history result = %v, want WhiteWins", tr.Players[1].History[0].Result)
	}
	if tr.Players[2].History[0].Result != WhiteWins {
		t.Fatalf("black history result = %v, want WhiteWins", tr.Players[2].History[0].Result)
	}
}

func TestApplyResultRejectsUnknownBoard(t *testing.T) {
	tr := newTestTournament(4)
	tr.Pairings = [][][2]uint32{{{1, 2}, {3, 4}}}
	tr.Results = [][]GameResult{{Ongoing, Ongoing}}
	tr.Byes = [][]uint32{{}}
	if _, err := ApplyResult(tr, 0, 9, WhiteWins); err != ErrUnknown {
		t.Fatalf("ApplyResult() error = %v, want ErrUnknown", err)
	}
}

func TestStandingsRanksByScoreThenMedianBuchholz(t *testing.T) {
	tr := newTestTournament(4)
	tr.Players[1].History = []HistoryItem{Game(2, White, WhiteWins), Game(3, White, WhiteWins)}
	tr.Players[2].History = []HistoryItem{Game(1, Black, WhiteWins), Game(4, Black, BlackWins)}
	tr.Players[3].History = []HistoryItem{Game(4, White, WhiteWins), Game(1, Black, WhiteWins)}
	tr.Players[4].History = []HistoryItem{Game(3, Black, WhiteWins), Game(2, White, BlackWins)}
	tr.Pairings = [][][2]uint32{{{1, 2}, {3, 4}}, {{1, 3}, {4, 2}}}
	tr.Results = [][]GameResult{{WhiteWins, WhiteWins}, {WhiteWins, BlackWins}}
	tr.Byes = [][]uint32{{}, {}}

	standings := tr.Standings(1)
	if standings[0].PlayerID != 1 {
		t.Fatalf("top standing player = %d, want 1", standings[0].PlayerID)
	}
	if standings[0].Score != 4 {
		t.Fatalf("top player score = %d, want 4", standings[0].Score)
	}
}

func TestMaxWeightMatchingPrefersCardinalityOverWeight(t *testing.T) {
	// A path 2-0-1-3: the single heavy edge 0-1 must lose out to the
	// two-edge matching {0-2, 1-3}, because maximizing cardinality comes
	// first.
	edges := []WeightedEdge{
		{U: 0, V: 1, Weight: 1000},
		{U: 0, V: 2, Weight: 1},
		{U: 1, V: 3, Weight: 1},
	}
	mate := MaxWeightMatching(4, edges)
	matched := 0
	for _, m := range mate {
		if m != -1 {
			matched++
		}
	}
	if matched != 4 {
		t.Fatalf("matched %d vertices, want all 4 (max cardinality)", matched)
	}
}

func TestMaxWeightMatchingHandlesOddVertexCount(t *testing.T) {
	edges := []WeightedEdge{
		{U: 0, V: 1, Weight: 10},
		{U: 1, V: 2, Weight: 5},
	}
	mate := MaxWeightMatching(3, edges)
	unmatched := 0
	for _, m := range mate {
		if m == -1 {
			unmatched++
		}
	}
	if unmatched != 1 {
		t.Fatalf("unmatched = %d, want 1", unmatched)
	}
	if mate[0] != 1 || mate[1] != 0 {
		t.Fatalf("mate = %v, want 0<->1 matched (higher weight edge)", mate)
	}
}
