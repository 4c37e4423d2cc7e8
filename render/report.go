package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/game"
)

// reportLines is the end-of-game text, banner chosen by final state
func reportLines(res game.Result) []string {
	banner := constants.BannerGameOver
	if res.State == game.StateWon {
		banner = constants.BannerCleared
	}
	return []string{
		fmt.Sprintf("Score: %d", res.Score),
		"",
		constants.BannerRule,
		banner,
		constants.BannerRule,
	}
}

// WriteReport prints the score and banner, newline is the line terminator to use
func WriteReport(w io.Writer, res game.Result, newline string) error {
	var b strings.Builder
	b.WriteString(newline)
	b.WriteString(newline)
	for _, line := range reportLines(res) {
		b.WriteString(line)
		b.WriteString(newline)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
