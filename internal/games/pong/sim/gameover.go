package sim

// EvaluateGameOver ends the rally once the ball gets past a paddle.
// It does nothing unless the state is Playing. When edge is set the
// ball's leading edge is compared instead of its centre.
func EvaluateGameOver(w *World, edge bool, g *Game, state *GameState) bool {
	if *state != StatePlaying {
		return false
	}

	halfW := 0.0
	if edge {
		halfW = w.Ball.Size.W * 0.5
	}
	x := w.Ball.Position.X

	switch {
	case x-halfW < w.Left.Position.X:
		// Escaped past the near paddle, the far side wins.
		*state = StateGameOver
		g.Winner = WinnerPlayer2
		return true
	case x+halfW > w.Right.Position.X:
		*state = StateGameOver
		g.Winner = WinnerPlayer1
		return true
	}
	return false
}
