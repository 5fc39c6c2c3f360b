package sim

import "fmt"

// ScoreText is the HUD line shown every frame.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// ResultText is the end-of-game message from the left (human) side's point
// of view. withScore appends the final score.
func ResultText(g Game, withScore bool) string {
	won := g.Winner == WinnerPlayer1
	if withScore {
		if won {
			return fmt.Sprintf("You won! Score: %d", g.Score)
		}
		return fmt.Sprintf("You lost! Score: %d", g.Score)
	}
	if won {
		return "You win!"
	}
	return "You lose!"
}
