package buttons

import (
	"github.com/charmbracelet/lipgloss"
)

// Component represents a horizontal row of buttons with one selection
type Component struct {
	labels        []string
	selectedIndex int
	focused       bool
	styles        Styles
}

// Styles defines the visual styling for a button row
type Styles struct {
	Button   lipgloss.Style
	Selected lipgloss.Style
	Gap      int
}

// New creates a new, unfocused button row
func New(labels []string, styles Styles) *Component {
	return &Component{
		labels: labels,
		styles: styles,
	}
}

// Select moves the selection to index, ignoring out-of-range values
func (c *Component) Select(index int) {
	if index >= 0 && index < len(c.labels) {
		c.selectedIndex = index
	}
}

// SelectedLabel returns the label of the selected button
func (c *Component) SelectedLabel() string {
	if c.selectedIndex < 0 || c.selectedIndex >= len(c.labels) {
		return ""
	}
	return c.labels[c.selectedIndex]
}

// Focus marks the row as holding keyboard focus
func (c *Component) Focus() {
	c.focused = true
}

// Blur removes keyboard focus
func (c *Component) Blur() {
	c.focused = false
}

// Focused reports whether the row holds keyboard focus
func (c *Component) Focused() bool {
	return c.focused
}

// View renders the row; the selection is only highlighted while focused
func (c *Component) View() string {
	if len(c.labels) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(c.labels)*2)
	for i, label := range c.labels {
		if i > 0 && c.styles.Gap > 0 {
			rendered = append(rendered, lipgloss.NewStyle().Width(c.styles.Gap).Render(""))
		}

		style := c.styles.Button
		if c.focused && i == c.selectedIndex {
			style = c.styles.Selected
		}
		rendered = append(rendered, style.Render(label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
}
