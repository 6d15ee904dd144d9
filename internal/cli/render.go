package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/valter-silva-au/taskdeck/pkg/models"
)

// Renderer formats menus, task listings, and messages for the console.
type Renderer struct {
	out io.Writer
	cfg *models.Config

	titleStyle lipgloss.Style
	doneStyle  lipgloss.Style
	pendStyle  lipgloss.Style
	mutedStyle lipgloss.Style
	errorStyle lipgloss.Style
	okStyle    lipgloss.Style
}

// NewRenderer creates a Renderer writing to out. With ui.color disabled
// every style degrades to plain text.
func NewRenderer(out io.Writer, cfg *models.Config) *Renderer {
	r := &Renderer{out: out, cfg: cfg}
	if cfg.Color {
		r.titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
		r.doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
		r.pendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
		r.mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		r.errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
		r.okStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	} else {
		plain := lipgloss.NewStyle()
		r.titleStyle = plain
		r.doneStyle = plain
		r.pendStyle = plain
		r.mutedStyle = plain
		r.errorStyle = plain
		r.okStyle = plain
	}
	return r
}

// Menu prints the command menu with both accepted spellings per command.
func (r *Renderer) Menu() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.titleStyle.Render("taskdeck"))
	fmt.Fprintln(r.out, "  1) add      / agregar     add a task")
	fmt.Fprintln(r.out, "  2) list     / listar      list tasks")
	fmt.Fprintln(r.out, "  3) complete / completar   complete a task")
	fmt.Fprintln(r.out, "  4) remove   / eliminar    remove a task")
	fmt.Fprintln(r.out, "  5) sort     / ordenar     list tasks sorted")
	fmt.Fprintln(r.out, "     help     / ayuda       show this menu")
	fmt.Fprintln(r.out, "     exit     / salir       quit")
}

// Help prints the static command reference.
func (r *Renderer) Help() {
	r.Menu()
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Commands accept their number, their English spelling, or")
	fmt.Fprintln(r.out, "their Spanish spelling. Complete and remove ask for an")
	fmt.Fprintln(r.out, "identifier prefix as shown by list.")
}

// Prompt prints a prompt without a trailing newline.
func (r *Renderer) Prompt(text string) {
	fmt.Fprint(r.out, text)
}

// TaskList renders tasks with a 1-based index, a completion glyph, the
// title, and a trailing count. With withID set, each line also carries
// a truncated identifier prefix.
func (r *Renderer) TaskList(tasks []models.Task, withID bool) {
	for i, t := range tasks {
		glyph := r.pendStyle.Render(r.cfg.PendingGlyph)
		if t.Completed {
			glyph = r.doneStyle.Render(r.cfg.DoneGlyph)
		}
		line := fmt.Sprintf("%3d. %s %s", i+1, glyph, t.Title)
		if withID {
			line += " " + r.mutedStyle.Render("("+r.shortID(t.ID)+")")
		}
		fmt.Fprintln(r.out, line)
	}
	noun := "tasks"
	if len(tasks) == 1 {
		noun = "task"
	}
	fmt.Fprintf(r.out, "%d %s\n", len(tasks), noun)
}

// Error prints a formatted error message.
func (r *Renderer) Error(msg string) {
	fmt.Fprintln(r.out, r.errorStyle.Render("error:"), msg)
}

// Info prints a success or status message.
func (r *Renderer) Info(msg string) {
	fmt.Fprintln(r.out, r.okStyle.Render(msg))
}

// shortID returns the leading identifier characters shown in listings,
// always lowercase so prefix lookup is case-insensitive.
func (r *Renderer) shortID(id string) string {
	id = strings.ToLower(id)
	if len(id) > r.cfg.IDPrefixLen {
		return id[:r.cfg.IDPrefixLen]
	}
	return id
}
