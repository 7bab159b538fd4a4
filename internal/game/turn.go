package game

// BatchIsValid reports whether a batch may be offered to the owner of the
// grid. A batch is rejected when it is empty, when no tile's marker can be
// placed on the grid, when four tiles share a marker species, or, with
// redrawOnTriple, when three do.
func BatchIsValid(grid *Grid, batch []*Tile, redrawOnTriple bool) bool {
	placeable := false
	for _, t := range batch {
		if t != nil && IsPlaceable(grid, t) {
			placeable = true
			break
		}
	}
	if !placeable {
		return false
	}

	same := maxSameMarker(batch)
	if same >= 4 {
		return false
	}
	if redrawOnTriple && same == 3 {
		return false
	}
	return true
}

// DrawValidBatch draws batches until one is valid for the grid. Rejected
// batches are discarded. If the supply runs out first the last draw is
// returned with ok set to false.
func (g *GameState) DrawValidBatch(grid *Grid) (batch []*Tile, ok bool) {
	for {
		batch = g.deck.Draw(BatchSize)
		if BatchIsValid(grid, batch, g.Settings.RedrawOnTriple) {
			return batch, true
		}
		if g.deck.Empty() {
			return batch, false
		}
	}
}

// ChooseTile picks a tile from the batch for the current turn.
func (g *GameState) ChooseTile(playerID string, index int) error {
	if err := g.validateTurn(playerID, PhaseChooseTile); err != nil {
		return err
	}
	if index < 0 || index >= len(g.Batch) || g.Batch[index] == nil {
		return ErrInvalidTileIndex
	}
	if !IsPlaceable(g.Grids[playerID], g.Batch[index]) {
		return ErrMarkerUnplaceable
	}

	g.Chosen = index
	g.Phase = PhasePlaceTile
	return nil
}

// PlaceTile puts the chosen tile on the player's grid. The tile leaves the
// batch and its marker becomes the pending token for this turn.
func (g *GameState) PlaceTile(playerID string, col, row int) error {
	if err := g.validateTurn(playerID, PhasePlaceTile); err != nil {
		return err
	}
	tile := g.ChosenTile()
	if tile == nil {
		return ErrInvalidAction
	}

	marker, err := g.Grids[playerID].Place(tile, col, row, false)
	if err != nil {
		return err
	}

	g.Batch = append(g.Batch[:g.Chosen], g.Batch[g.Chosen+1:]...)
	g.Chosen = -1
	g.PendingMarker = marker
	g.Phase = PhasePlaceMarker
	return nil
}

// PlaceMarker puts the pending wildlife token on a tile of the player's
// grid and ends the turn.
func (g *GameState) PlaceMarker(playerID string, col, row int) error {
	if err := g.validateTurn(playerID, PhasePlaceMarker); err != nil {
		return err
	}
	if err := g.Grids[playerID].PlaceMarker(col, row, g.PendingMarker); err != nil {
		return err
	}

	g.PendingMarker = WildlifeNone
	g.finishTurn()
	return nil
}

func (g *GameState) validateTurn(playerID string, phase Phase) error {
	if g.Phase == PhaseGameOver {
		return ErrGameOver
	}
	if g.CurrentPlayerID != playerID {
		return ErrNotYourTurn
	}
	if g.Phase != phase {
		return ErrInvalidAction
	}
	return nil
}

// finishTurn refills the batch, hands over to the next player and starts
// their turn.
func (g *GameState) finishTurn() {
	if !g.deck.Empty() {
		g.Batch = append(g.Batch, g.deck.Draw(1)...)
	}
	if g.advancePlayerTurn() {
		g.Round++
	}
	g.beginTurn()
}

// advancePlayerTurn moves to the next player in the order and reports
// whether the order wrapped around to the first player.
func (g *GameState) advancePlayerTurn() bool {
	for i, pid := range g.PlayerOrder {
		if pid == g.CurrentPlayerID {
			next := (i + 1) % len(g.PlayerOrder)
			g.CurrentPlayerID = g.PlayerOrder[next]
			return next == 0
		}
	}
	return false
}

// beginTurn ends the game if no further turn is possible, otherwise makes
// sure the current player is offered a valid batch.
func (g *GameState) beginTurn() {
	switch {
	case g.Round > g.Settings.MaxRounds:
		g.endGame(EndRoundLimit)
		return
	case g.deck.Empty():
		g.endGame(EndSupplyExhausted)
		return
	}

	grid := g.Grids[g.CurrentPlayerID]
	if len(grid.FreeCells()) == 0 {
		g.endGame(EndGridFull)
		return
	}

	if !BatchIsValid(grid, g.Batch, g.Settings.RedrawOnTriple) {
		batch, ok := g.DrawValidBatch(grid)
		g.Batch = batch
		if !ok {
			g.endGame(EndNoValidBatch)
			return
		}
	}
	g.Chosen = -1
	g.Phase = PhaseChooseTile
}

func (g *GameState) endGame(reason EndReason) {
	g.Phase = PhaseGameOver
	g.EndReason = reason
	g.Chosen = -1
	g.CalculateAllScores()
}
