package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubie"
)

// Sticker colours, indexed by cubie.Color.
var stickerStyles = [6]lipgloss.Style{
	cubie.White:  sticker("#FFFFFF"),
	cubie.Red:    sticker("#C41E3A"),
	cubie.Green:  sticker("#009E60"),
	cubie.Yellow: sticker("#FFD500"),
	cubie.Orange: sticker("#FF5800"),
	cubie.Blue:   sticker("#0051BA"),
}

func sticker(bg string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(bg)).Foreground(lipgloss.Color("0"))
}

// netRows lists the faces drawn in each band of three sticker rows.
// A negative entry is a blank face-sized gap.
var netRows = [3][4]int{
	{-1, int(cubie.FaceU), -1, -1},
	{int(cubie.FaceL), int(cubie.FaceF), int(cubie.FaceR), int(cubie.FaceB)},
	{-1, int(cubie.FaceD), -1, -1},
}

// renderNet draws the unfolded cube. With colour each sticker is a
// two-cell coloured block; without it the colour letter is printed.
func renderNet(f cubie.Facelets, colour bool) string {
	var b strings.Builder
	for _, band := range netRows {
		for row := 0; row < 3; row++ {
			var line strings.Builder
			for _, face := range band {
				if face < 0 {
					line.WriteString("       ")
					continue
				}
				for col := 0; col < 3; col++ {
					line.WriteString(renderSticker(f[face][row*3+col], colour))
				}
				line.WriteString(" ")
			}
			b.WriteString(strings.TrimRight(line.String(), " "))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderSticker(c cubie.Color, colour bool) string {
	if !colour || int(c) >= len(stickerStyles) {
		return c.String() + " "
	}
	return stickerStyles[c].Render(c.String() + " ")
}
