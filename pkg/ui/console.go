package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Console writes labelled messages to a writer.
type Console struct {
	out    io.Writer
	styles Styles
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer, mode ColorMode) *Console {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(DetectProfile(w, mode))
	return &Console{out: w, styles: NewStyles(renderer)}
}

// Writer returns the underlying writer.
func (c *Console) Writer() io.Writer {
	return c.out
}

// Success prints a success message.
func (c *Console) Success(format string, args ...interface{}) {
	c.labelled(c.styles.Success, "Success", format, args...)
}

// Warning prints a warning.
func (c *Console) Warning(format string, args ...interface{}) {
	c.labelled(c.styles.Warning, "Warning", format, args...)
}

// Error prints an error message.
func (c *Console) Error(format string, args ...interface{}) {
	c.labelled(c.styles.Error, "Error", format, args...)
}

// Println prints a plain line.
func (c *Console) Println(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Field prints "name: value" with the name muted.
func (c *Console) Field(name, value string) {
	fmt.Fprintf(c.out, "%s %s\n", c.styles.Muted.Render(name+":"), value)
}

// Profile renders a profile name.
func (c *Console) Profile(name string) string {
	return c.styles.Profile.Render(name)
}

// ProfileList prints each profile followed by its paths.
func (c *Console) ProfileList(names []string, paths [][]string) {
	for i, name := range names {
		var p []string
		if i < len(paths) {
			p = paths[i]
		}
		fmt.Fprintf(c.out, "  %s: %s\n", c.Profile(name), strings.Join(p, ", "))
	}
}

func (c *Console) labelled(style lipgloss.Style, label, format string, args ...interface{}) {
	fmt.Fprintf(c.out, "%s\t%s\n", style.Render(label), fmt.Sprintf(format, args...))
}

// Fail prints err as a single "Error: ..." line in the error style.
func (c *Console) Fail(err error) {
	fmt.Fprintln(c.out, c.styles.Error.Render("Error: "+err.Error()))
}
