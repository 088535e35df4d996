package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mj1618/a11y-bridge/internal/model"
)

var titler = cases.Title(language.English)

var (
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	roleStyle   = lipgloss.NewStyle().Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// roleColumn is the padded width of the role column in text output.
const roleColumn = 12

// PrintText renders v as human-readable text. Types without a text
// rendering fall back to YAML.
func PrintText(v interface{}) error {
	switch r := v.(type) {
	case ReadResult:
		return writeTree(Stdout, r.Elements, 0)
	case *ReadResult:
		return writeTree(Stdout, r.Elements, 0)
	case ReadFlatResult:
		return writeFlat(Stdout, r.Elements)
	case []model.Element:
		return writeTree(Stdout, r, 0)
	case model.Element:
		return writeTree(Stdout, []model.Element{r}, 0)
	case []model.Window:
		return writeWindows(Stdout, r)
	default:
		return PrintYAML(v)
	}
}

// RoleLabel turns a role code into its display name, e.g. "chk" -> "Check Box".
func RoleLabel(code string) string {
	if name, ok := model.RoleName(code); ok {
		return titler.String(name)
	}
	return titler.String(code)
}

func writeTree(w io.Writer, elements []model.Element, depth int) error {
	for _, el := range elements {
		indent := strings.Repeat("  ", depth)
		if _, err := fmt.Fprintln(w, indent+elementLine(el.ID, el.Role, el.Title, el.Value, el.Focused, el.Ref)); err != nil {
			return err
		}
		if err := writeTree(w, el.Children, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func writeFlat(w io.Writer, elements []model.FlatElement) error {
	for _, el := range elements {
		line := elementLine(el.ID, el.Role, el.Title, el.Value, el.Focused, el.Ref)
		if el.Path != "" {
			line += "  " + mutedStyle.Render(el.Path)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func elementLine(id int, role, title, value string, focused bool, ref string) string {
	var b strings.Builder
	b.WriteString(idStyle.Render(fmt.Sprintf("[%d]", id)))
	b.WriteByte(' ')
	b.WriteString(roleStyle.Render(runewidth.FillRight(RoleLabel(role), roleColumn)))
	if title != "" {
		b.WriteByte(' ')
		b.WriteString(titleStyle.Render(fmt.Sprintf("%q", title)))
	}
	if value != "" {
		b.WriteString(" value=")
		b.WriteString(value)
	}
	if focused {
		b.WriteByte(' ')
		b.WriteString(focusStyle.Render("(focused)"))
	}
	if ref != "" {
		b.WriteString(" ")
		b.WriteString(mutedStyle.Render("ref=" + ref))
	}
	return strings.TrimRight(b.String(), " ")
}

func writeWindows(w io.Writer, windows []model.Window) error {
	titleWidth := runewidth.StringWidth("TITLE")
	for _, win := range windows {
		if n := runewidth.StringWidth(win.Title); n > titleWidth {
			titleWidth = n
		}
	}
	header := fmt.Sprintf("%-4s %s %s", "ID", runewidth.FillRight("TITLE", titleWidth), "STATE")
	if _, err := fmt.Fprintln(w, headerStyle.Render(header)); err != nil {
		return err
	}
	for _, win := range windows {
		var state []string
		if win.Focused {
			state = append(state, "focused")
		}
		if win.Maximized {
			state = append(state, "maximized")
		}
		if win.Minimized {
			state = append(state, "minimized")
		}
		line := fmt.Sprintf("%-4d %s %s", win.ID, runewidth.FillRight(win.Title, titleWidth), strings.Join(state, ","))
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
