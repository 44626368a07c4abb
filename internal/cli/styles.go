package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesim"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerStyles maps each color to a terminal color.
var stickerStyles = map[cubesim.Color]lipgloss.Style{
	cubesim.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	cubesim.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	cubesim.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	cubesim.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	cubesim.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	cubesim.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

const sticker = "██"

// renderNet draws the cube net with colored stickers:
//
//	  U
//	L F R B
//	  D
func renderNet(f *cubesim.Facelets) string {
	var b strings.Builder
	pad := strings.Repeat(" ", 3*(len([]rune(sticker))+1))

	row := func(face cubesim.Face, r int) {
		stickers := f.Face(face)
		for col := 0; col < 3; col++ {
			c := stickers[r*3+col]
			b.WriteString(stickerStyles[c].Render(sticker))
			b.WriteString(" ")
		}
	}

	for r := 0; r < 3; r++ {
		b.WriteString(pad)
		row(cubesim.FaceU, r)
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		for _, face := range []cubesim.Face{cubesim.FaceL, cubesim.FaceF, cubesim.FaceR, cubesim.FaceB} {
			row(face, r)
		}
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(pad)
		row(cubesim.FaceD, r)
		b.WriteString("\n")
	}
	return b.String()
}

// recentMoves formats the last n moves, eliding older ones.
func recentMoves(moves []cubesim.Move, n int) string {
	if len(moves) <= n {
		return cubesim.FormatMoves(moves)
	}
	return "... " + cubesim.FormatMoves(moves[len(moves)-n:])
}
