package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/edgekit/edgekit/pkg/edgelist"
	"github.com/edgekit/edgekit/pkg/graph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newInspectCmd creates the inspect command, an interactive terminal browser
// over the nodes of a parsed graph.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Browse a graph node by node in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
}

// runInspect parses the input file and starts the node browser.
func runInspect(cmd *cobra.Command, input string) error {
	rows, err := edgelist.ParseFile(input)
	if err != nil {
		return err
	}
	g := graph.NewAdjacencyList()
	if err := edgelist.Build(rows, g); err != nil {
		return err
	}

	if g.NodeCount() == 0 {
		printWarning("graph has no nodes")
		return nil
	}

	model := NewNodeListModel(input, g)
	p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
	_, err = p.Run()
	return err
}

// =============================================================================
// NodeListModel - Interactive node browser
// =============================================================================

// NodeListModel is the bubbletea model for browsing a graph's nodes. The
// left-hand cursor walks the node list; the detail pane shows the incident
// edges of the node under the cursor.
type NodeListModel struct {
	Input  string
	Graph  graph.Graph
	Cursor int
	Height int
	Offset int
}

// NewNodeListModel creates a node browser over g.
func NewNodeListModel(input string, g graph.Graph) NodeListModel {
	return NodeListModel{
		Input:  input,
		Graph:  g,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m NodeListModel) Init() tea.Cmd {
	return nil
}

func (m NodeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < m.Graph.NodeCount()-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g", "home":
			m.Cursor, m.Offset = 0, 0
		case "G", "end":
			m.Cursor = m.Graph.NodeCount() - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m NodeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Inspect " + m.Input))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > m.Graph.NodeCount() {
		end = m.Graph.NodeCount()
	}

	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		degree := len(graph.NodeEdges(m.Graph, i))
		line := fmt.Sprintf("%snode %-4d %s", cursor, i+1,
			listDimStyle.Render(fmt.Sprintf("%d edge(s)", degree)))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.detailView())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.Graph.NodeCount())))

	return b.String()
}

// detailView renders the incident edges of the node under the cursor.
func (m NodeListModel) detailView() string {
	edges := graph.NodeEdges(m.Graph, m.Cursor)
	if len(edges) == 0 {
		return listDimStyle.Render("  no incident edges")
	}

	var b strings.Builder
	for _, e := range edges {
		other := e.Other(m.Cursor)
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			listDimStyle.Render("→"),
			StyleValue.Render(fmt.Sprintf("node %d", other+1)),
			StyleNumber.Render(fmt.Sprintf("weight %d", e.Weight))))
	}
	return strings.TrimRight(b.String(), "\n")
}
