package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/segtree"
	"golang.org/x/term"
)

// Palette maps node states to colors. A nil entry prints uncolored.
type Palette struct {
	Split   *color.Color // node with materialized children and no tag
	Uniform *color.Color // node without children and no tag
	Assign  *color.Color // node holding a pending assignment
	Add     *color.Color // node holding a pending delta
}

// DefaultPalette returns the palette used if Config.Palette is nil.
func DefaultPalette() *Palette {
	return &Palette{
		Split:   color.New(color.FgBlue),
		Uniform: color.New(color.FgGreen),
		Assign:  color.New(color.FgRed, color.Bold),
		Add:     color.New(color.FgYellow),
	}
}

// Config controls the output of Dump.
type Config struct {
	LineWidth int      // lines are truncated to this many characters; 0 means no limit
	MaxDepth  int      // nodes deeper than this are skipped; 0 means no limit
	Indent    string   // indentation per level, defaults to two spaces
	Palette   *Palette // colors, defaults to DefaultPalette()
}

// Dump prints the materialized nodes of tree to w, one per line, in pre-order.
// If config is nil, ConfigFromTerminal is used.
func Dump(w io.Writer, tree *segtree.Tree, config *Config) error {
	if tree == nil {
		return fmt.Errorf("console: nil tree")
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	palette := config.Palette
	if palette == nil {
		palette = DefaultPalette()
	}
	indent := config.Indent
	if indent == "" {
		indent = "  "
	}
	start, end := tree.Domain()
	header := fmt.Sprintf("%s tree over [%d,%d], default %d, %d nodes\n",
		tree.Kind(), start, end, tree.Default(), tree.NodeCount())
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	var err error
	tree.Walk(func(info segtree.NodeInfo) bool {
		if config.MaxDepth > 0 && info.Depth > config.MaxDepth {
			return true
		}
		line := strings.Repeat(indent, info.Depth) + nodeText(info)
		line = truncate(line, config.LineWidth)
		if c := nodeColor(info, palette); c != nil {
			_, err = c.Fprint(w, line)
		} else {
			_, err = io.WriteString(w, line)
		}
		if err == nil {
			_, err = io.WriteString(w, "\n")
		}
		return err == nil
	})
	if err != nil {
		T().Errorf("console: dump failed: %v", err)
	}
	return err
}

func nodeText(info segtree.NodeInfo) string {
	var b strings.Builder
	if info.Leaf {
		fmt.Fprintf(&b, "[%d]", info.Lo)
	} else {
		fmt.Fprintf(&b, "[%d,%d]", info.Lo, info.Hi)
	}
	fmt.Fprintf(&b, " = %d", info.Aggregate)
	switch info.Pending {
	case segtree.PendingAssign:
		fmt.Fprintf(&b, "  ⟨assign %d⟩", info.PendingValue)
	case segtree.PendingAdd:
		fmt.Fprintf(&b, "  ⟨add %+d⟩", info.PendingValue)
	}
	return b.String()
}

func nodeColor(info segtree.NodeInfo, p *Palette) *color.Color {
	switch info.Pending {
	case segtree.PendingAssign:
		return p.Assign
	case segtree.PendingAdd:
		return p.Add
	}
	if info.Split {
		return p.Split
	}
	return p.Uniform
}

// truncate shortens s to at most width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	runes := []rune(s)
	return string(runes[:width-1]) + "…"
}

// Print dumps tree to stdout, configured from the current terminal.
func Print(tree *segtree.Tree) error {
	return Dump(os.Stdout, tree, nil)
}

// --- Config for terminals --------------------------------------------------

// Fallback and minimum line widths for terminal output.
const (
	defaultTermWidth = 80
	minTermWidth     = 10
)

// ConfigFromTerminal returns a Config fitted to stdout. If stdout is a
// terminal, lines are cut one column short of its width. Otherwise lines are
// not limited.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return config
	}
	config.LineWidth = lineWidthFor(term.GetSize(fd))
	T().P("console", "terminal").Infof("dump lines limited to %d columns", config.LineWidth)
	return config
}

// lineWidthFor derives a line width from the result of term.GetSize.
func lineWidthFor(cols, _ int, err error) int {
	if err != nil {
		return defaultTermWidth
	}
	return max(cols-1, minTermWidth)
}
