package views

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/btslang/bts/internal/grammar"
	"github.com/btslang/bts/internal/output"
	"github.com/btslang/bts/internal/parser"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(1, 2)

	scriptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 2)

	previewStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	hintStyle = lipgloss.NewStyle().
			Faint(true).
			Padding(0, 2)
)

// View represents a TUI view interface.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
}

// needsTarget lists the action kinds whose form asks for an element id.
var needsTarget = map[string]bool{
	"click":      true,
	"type":       true,
	"hover":      true,
	"assert":     true,
	"select":     true,
	"uploadFile": true,
}

// valueHint describes the value field per action kind. Kinds without an
// entry take no value and the field is hidden.
var valueHint = map[string]string{
	"type":       `Text to type into the element`,
	"scroll":     `Direction and amount, e.g. down 300`,
	"wait":       `Condition, e.g. visible #3, 2000, or textPresent "Done"`,
	"pressKey":   `Key name, e.g. Enter`,
	"navigate":   `URL to load`,
	"assert":     `Assertion, e.g. visible or textContains "Welcome"`,
	"select":     `Option picker, e.g. value "blue" or index 2`,
	"uploadFile": `Path of the file to attach`,
	"screenshot": `Screenshot name`,
}

// BuilderView composes a scenario script one step at a time. It only ever
// generates DSL text from the form fields; the preview comes from
// re-parsing the draft after every completed step, so what the builder
// shows is exactly what the parser will accept.
type BuilderView struct {
	form     *huh.Form
	viewport viewport.Model
	width    int
	height   int

	// scenario form fields
	name     string
	startURL string
	priority string

	// step form fields
	kind        string
	description string
	target      string
	value       string
	expect      string
	another     bool

	started  bool
	finished bool
	draft    []string
}

// NewBuilderView creates a new builder view.
func NewBuilderView() View {
	b := &BuilderView{
		width:    80,
		height:   24,
		viewport: viewport.New(76, 10),
		priority: "medium",
	}
	b.form = b.scenarioForm()
	return b
}

// Init initializes the view.
func (b *BuilderView) Init() tea.Cmd {
	return b.form.Init()
}

// Update handles messages.
func (b *BuilderView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.viewport.Width = max(20, b.width-8)
		b.viewport.Height = max(5, b.height/3)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return b, tea.Quit
		case "q":
			if b.finished {
				return b, tea.Quit
			}
		}
	}

	if b.finished {
		vp, cmd := b.viewport.Update(msg)
		b.viewport = vp
		return b, cmd
	}

	var cmds []tea.Cmd
	form, cmd := b.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		b.form = f
		cmds = append(cmds, cmd)
	}

	if b.form.State == huh.StateCompleted {
		if !b.started {
			b.started = true
			b.draft = append(b.draft, b.composeHeader()...)
			b.refreshPreview()
			b.form = b.stepForm()
			cmds = append(cmds, b.form.Init())
		} else {
			b.draft = append(b.draft, "")
			b.draft = append(b.draft, b.composeStep()...)
			b.refreshPreview()
			if b.another {
				b.form = b.stepForm()
				cmds = append(cmds, b.form.Init())
			} else {
				b.finished = true
			}
		}
	}

	// Arrows belong to the form while it is live; the wheel still scrolls
	// the preview.
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		vp, vcmd := b.viewport.Update(msg)
		b.viewport = vp
		if vcmd != nil {
			cmds = append(cmds, vcmd)
		}
	}

	return b, tea.Batch(cmds...)
}

// View renders the view.
func (b *BuilderView) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("bts scenario builder"))
	s.WriteString("\n")

	if len(b.draft) > 0 {
		s.WriteString(scriptStyle.Render(b.Script()))
		s.WriteString("\n")
		s.WriteString(previewStyle.Render(b.viewport.View()))
		s.WriteString("\n\n")
	}

	if b.finished {
		s.WriteString(hintStyle.Render("Copy the script above into a .bts file. Press q or esc to quit."))
		s.WriteString("\n")
		return s.String()
	}

	s.WriteString(b.form.View())
	s.WriteString("\n")
	s.WriteString(hintStyle.Render("esc quits, ctrl+c exits"))
	s.WriteString("\n")
	return s.String()
}

// Script returns the draft script text built so far.
func (b *BuilderView) Script() string {
	if len(b.draft) == 0 {
		return ""
	}
	return strings.Join(b.draft, "\n") + "\n"
}

// scenarioForm collects the scenario header fields.
func (b *BuilderView) scenarioForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Scenario name").
				Placeholder("Login flow").
				Value(&b.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("a scenario needs a name")
					}
					return nil
				}),

			huh.NewInput().
				Title("Start URL").
				Description("Optional").
				Placeholder("https://example.test/login").
				Value(&b.startURL),

			huh.NewSelect[string]().
				Title("Priority").
				Options(huh.NewOptions("critical", "high", "medium", "low")...).
				Value(&b.priority),
		),
	)
}

// stepForm collects one step. Target and value groups hide themselves for
// kinds that do not use them.
func (b *BuilderView) stepForm() *huh.Form {
	b.kind = "click"
	b.description = ""
	b.target = ""
	b.value = ""
	b.expect = ""
	b.another = true

	g := grammar.GetGrammar()
	opts := make([]huh.Option[string], 0, len(g.Actions))
	for _, a := range g.Actions {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s - %s", a.Name, a.Description), a.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Action").
				Options(opts...).
				Value(&b.kind),

			huh.NewInput().
				Title("Step description").
				Placeholder("open the login form").
				Value(&b.description),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Target element").
				Description("Numeric element id, e.g. 3").
				Value(&b.target),
		).WithHideFunc(func() bool { return !needsTarget[b.kind] }),

		huh.NewGroup(
			huh.NewInput().
				Title("Value").
				DescriptionFunc(func() string { return valueHint[b.kind] }, &b.kind).
				Value(&b.value),
		).WithHideFunc(func() bool { return valueHint[b.kind] == "" }),

		huh.NewGroup(
			huh.NewInput().
				Title("Expected outcome").
				Description("Optional").
				Value(&b.expect),

			huh.NewConfirm().
				Title("Add another step?").
				Value(&b.another),
		),
	)
}

// composeHeader renders the scenario form fields as DSL lines.
func (b *BuilderView) composeHeader() []string {
	lines := []string{"scenario " + strconv.Quote(strings.TrimSpace(b.name))}
	if url := strings.TrimSpace(b.startURL); url != "" {
		lines = append(lines, "url "+strconv.Quote(url))
	}
	lines = append(lines, "priority "+b.priority)
	return lines
}

// composeStep renders the step form fields as a DSL step block.
func (b *BuilderView) composeStep() []string {
	lines := []string{fmt.Sprintf("step %s {", strconv.Quote(strings.TrimSpace(b.description)))}
	lines = append(lines, "  "+b.composeAction())
	if expect := strings.TrimSpace(b.expect); expect != "" {
		lines = append(lines, "  expect "+strconv.Quote(expect))
	}
	lines = append(lines, "}")
	return lines
}

// composeAction renders the action line for the current step fields.
func (b *BuilderView) composeAction() string {
	target := strings.TrimSpace(b.target)
	value := strings.TrimSpace(b.value)

	switch b.kind {
	case "click", "hover":
		return fmt.Sprintf("%s #%s", b.kind, target)
	case "type":
		return fmt.Sprintf("type #%s %s", target, strconv.Quote(value))
	case "scroll":
		if value == "" {
			return "scroll down"
		}
		return "scroll " + value
	case "wait":
		if value == "" {
			return "wait pageLoaded"
		}
		return "wait " + value
	case "pressKey":
		return "pressKey " + strconv.Quote(value)
	case "navigate":
		return "navigate " + strconv.Quote(value)
	case "assert":
		if value == "" {
			value = "visible"
		}
		return fmt.Sprintf("assert #%s %s", target, value)
	case "select":
		return fmt.Sprintf("select #%s %s", target, value)
	case "uploadFile":
		return fmt.Sprintf("uploadFile #%s %s", target, strconv.Quote(value))
	case "screenshot":
		if value == "" {
			return "screenshot"
		}
		return "screenshot " + strconv.Quote(value)
	default:
		return b.kind
	}
}

// refreshPreview re-parses the draft and renders the result into the
// preview viewport.
func (b *BuilderView) refreshPreview() {
	res := parser.Parse(b.Script())
	var buf bytes.Buffer
	output.RenderResult(&buf, res)
	b.viewport.SetContent(strings.TrimRight(buf.String(), "\n"))
	b.viewport.GotoTop()
}
