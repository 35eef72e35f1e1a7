package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/mazelab/internal/config"
	"github.com/san-kum/mazelab/internal/maze"
	"github.com/san-kum/mazelab/internal/solve"
)

const (
	stateMenu = iota
	stateMaze
)

const (
	showLabel = "show solution"
	hideLabel = "hide solution"
)

var difficultyInfo = map[maze.Difficulty]string{
	maze.Easy:   "many shortcuts, open grid",
	maze.Medium: "a few alternate routes",
	maze.Hard:   "near tree-like, dead ends everywhere",
}

type model struct {
	state        int
	cursor       int
	choices      []maze.Difficulty
	cfg          *config.Config
	rng          *rand.Rand
	grid         *maze.Grid
	path         solve.Path
	showSolution bool
	err          error
}

func newModel(cfg *config.Config) model {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return model{
		state:   stateMenu,
		choices: maze.Difficulties(),
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case stateMenu:
			return m.menuKey(msg)
		case stateMaze:
			return m.mazeKey(msg)
		}
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.regenerate(m.choices[m.cursor])
		m.state = stateMaze
	}
	return m, nil
}

func (m model) mazeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
	case "s":
		m.showSolution = !m.showSolution
	case "r":
		m.regenerate(m.choices[m.cursor])
	}
	return m, nil
}

// regenerate builds a fresh maze and its solution. An unreachable exit
// leaves the path empty; the overlay then simply shows nothing.
func (m *model) regenerate(d maze.Difficulty) {
	gen := maze.NewGenerator(d, m.rng)
	g, err := gen.Generate(m.cfg.Width, m.cfg.Height)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.grid = g
	m.path, _ = solve.NewBFS().Solve(g)
	m.showSolution = false
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateMaze:
		return m.viewMaze()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("MAZELAB") + "\n")
	b.WriteString("  " + subStyle.Render("maze generator and solver") + "\n")
	b.WriteString("  " + subStyle.Render("─────────────────────────") + "\n\n")
	for i, d := range m.choices {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				cursorStyle.Render("▸"),
				itemStyle.Render(fmt.Sprintf("%-8s", string(d))),
				blurbStyle.Render(difficultyInfo[d])))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n",
				dimStyle.Render(fmt.Sprintf("%-8s", string(d))),
				dimStyle.Render(difficultyInfo[d])))
		}
	}
	b.WriteString("\n  " + keyStyle.Render("j/k") + dimStyle.Render(" navigate  ") +
		keyStyle.Render("enter") + dimStyle.Render(" generate  ") +
		keyStyle.Render("q") + dimStyle.Render(" quit") + "\n")
	return b.String()
}

func (m model) viewMaze() string {
	if m.err != nil {
		return "\n  " + exitStyle.Render("error: "+m.err.Error()) + "\n\n  " +
			keyStyle.Render("esc") + dimStyle.Render(" back") + "\n"
	}
	if m.grid == nil {
		return ""
	}

	var path solve.Path
	if m.showSolution {
		path = m.path
	}
	toggle := showLabel
	if m.showSolution {
		toggle = hideLabel
	}

	var b strings.Builder
	b.WriteString("\n" + renderGrid(m.grid, path) + "\n")
	b.WriteString("  " + keyStyle.Render("s") + dimStyle.Render(" "+toggle+"  ") +
		keyStyle.Render("r") + dimStyle.Render(" regenerate  ") +
		keyStyle.Render("esc") + dimStyle.Render(" menu  ") +
		keyStyle.Render("q") + dimStyle.Render(" quit") + "\n")
	return b.String()
}

// renderGrid draws each cell as a two-rune block with a state-to-style
// mapping, overlaying the path on the passages it crosses.
func renderGrid(g *maze.Grid, path solve.Path) string {
	onPath := make(map[maze.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		b.WriteString("  ")
		for x := 0; x < g.Width(); x++ {
			p := maze.Point{X: x, Y: y}
			switch g.At(p) {
			case maze.Wall:
				b.WriteString(wallStyle.Render("██"))
			case maze.Entry:
				b.WriteString(entryStyle.Render("S "))
			case maze.Exit:
				b.WriteString(exitStyle.Render(" E"))
			default:
				if onPath[p] {
					b.WriteString(solutionStyle.Render("··"))
				} else {
					b.WriteString("  ")
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Run starts the interactive session. It returns nil when the operator
// quits from either screen.
func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(newModel(cfg), tea.WithAltScreen()).Run()
	return err
}
