package game

import "testing"

// Helper to create players with fixed totals, in order.
func createScoredPlayers(totals ...int) []*Player {
	players := make([]*Player, len(totals))
	for i, total := range totals {
		id := string(rune('A' + i))
		players[i] = &Player{
			ID:    id,
			Name:  id,
			Score: Score{Wildlife: total},
		}
	}
	return players
}

func TestDetermineWinner_TwoPlayersTied(t *testing.T) {
	if winner := DetermineWinner(createScoredPlayers(12, 12)); winner != nil {
		t.Errorf("Expected no winner when two players tied, got %s", winner.ID)
	}
}

func TestDetermineWinner_TopScoreShared(t *testing.T) {
	if winner := DetermineWinner(createScoredPlayers(10, 10, 7)); winner != nil {
		t.Errorf("Expected no winner when top score is shared, got %s", winner.ID)
	}
}

func TestDetermineWinner_ClearLead(t *testing.T) {
	winner := DetermineWinner(createScoredPlayers(10, 7, 5))
	if winner == nil {
		t.Fatal("Expected a winner")
	}
	if winner.ID != "A" {
		t.Errorf("Expected player A to win, got %s", winner.ID)
	}
}

func TestDetermineWinner_LeadAfterTie(t *testing.T) {
	// An early tie is cleared by a later higher score.
	winner := DetermineWinner(createScoredPlayers(8, 8, 11))
	if winner == nil {
		t.Fatal("Expected a winner")
	}
	if winner.ID != "C" {
		t.Errorf("Expected player C to win, got %s", winner.ID)
	}
}

func TestDetermineWinner_LowerTieIgnored(t *testing.T) {
	winner := DetermineWinner(createScoredPlayers(12, 9, 9))
	if winner == nil || winner.ID != "A" {
		t.Errorf("Expected player A to win over a tie for second place")
	}
}

func TestDetermineWinner_NoPlayers(t *testing.T) {
	if winner := DetermineWinner(nil); winner != nil {
		t.Errorf("Expected no winner without players, got %s", winner.ID)
	}
}

func TestScoreTotal(t *testing.T) {
	s := Score{Wildlife: 7, Habitat: 11, Bonus: 4}
	if s.Total() != 22 {
		t.Errorf("Expected total 22, got %d", s.Total())
	}
}
