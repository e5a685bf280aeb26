package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/nacbot/internal/entity"
)

const title = "NACBOT - noughts and crosses against a bot"

// ANSI colour codes of the cells.
const (
	colorBlank = "7"
	colorX     = "1"
	colorO     = "4"
)

// Renderer - draws the game on a terminal. Colours follow the terminal profile,
// so redirected output gets plain text.
type Renderer struct {
	out *termenv.Output
}

func NewRenderer(w io.Writer, color bool) *Renderer {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

func (that *Renderer) colored() bool {
	return that.out.Profile != termenv.Ascii
}

// Clear - wipes the game area on a colour terminal.
func (that *Renderer) Clear() {
	if that.colored() {
		that.out.ClearScreen()
	}
}

func (that *Renderer) Info() {
	fmt.Fprintln(that.out, that.out.String(title).Bold())

	if that.colored() {
		fmt.Fprintf(that.out, "On the grid, %s means blank, %s means X, and %s means O\n",
			that.cell(entity.Empty), that.cell(entity.PlayerX), that.cell(entity.PlayerO))
	}

	fmt.Fprintln(that.out)
}

// Board - column letters on top, row numbers on the left.
func (that *Renderer) Board(board entity.Board) {
	var sb strings.Builder

	sb.WriteString("  ")
	for col := range entity.Size {
		fmt.Fprintf(&sb, " %c  ", 'A'+col)
	}
	sb.WriteString("\n")

	for row := range entity.Size {
		fmt.Fprintf(&sb, "%d ", row+1)
		for col := range entity.Size {
			sb.WriteString(that.cell(board[row][col]))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	fmt.Fprintln(that.out, sb.String())
}

func (that *Renderer) Suggestion(c entity.Coordinate) {
	fmt.Fprintf(that.out, "Bot suggestion: %s\n", c)
}

func (that *Renderer) Prompt() {
	fmt.Fprint(that.out, "Select a place (E.g. \"A1\"): ")
}

func (that *Renderer) Error(err error) {
	fmt.Fprintln(that.out, that.out.String(err.Error()).Foreground(that.out.Color(colorX)))
}

func (that *Renderer) Winner(verdict entity.Verdict) {
	var name termenv.Style

	switch verdict {
	case entity.WinnerX:
		name = that.out.String("X").Foreground(that.out.Color(colorX))
	case entity.WinnerO:
		name = that.out.String("O").Foreground(that.out.Color(colorO))
	case entity.Tie:
		name = that.out.String("Tie").Foreground(that.out.Color("2"))
	default:
		return
	}

	fmt.Fprintf(that.out, "Winner: %s!\n", name)
}

func (that *Renderer) cell(mark entity.Mark) string {
	switch mark {
	case entity.PlayerX:
		return that.out.String(" X ").Bold().Background(that.out.Color(colorX)).String()
	case entity.PlayerO:
		return that.out.String(" O ").Bold().Background(that.out.Color(colorO)).String()
	default:
		if that.colored() {
			return that.out.String("   ").Background(that.out.Color(colorBlank)).String()
		}
		return " . "
	}
}
