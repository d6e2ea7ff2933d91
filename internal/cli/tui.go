package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spacerabbit99982/abbund/pkg/frame"
	"github.com/spacerabbit99982/abbund/pkg/plan"
)

// =============================================================================
// SearchModel - Live dimension search view
// =============================================================================

// iterationMsg delivers one search iteration to the model.
type iterationMsg plan.Iteration

// searchDoneMsg delivers the final result or error.
type searchDoneMsg struct {
	res *plan.Result
	err error
}

// SearchModel is the bubbletea model showing the dimension search while
// it runs: one line per iteration with the attempted sections and which
// members failed their check.
type SearchModel struct {
	iterations []plan.Iteration
	result     *plan.Result
	err        error
	done       bool
}

func (m SearchModel) Init() tea.Cmd {
	return nil
}

func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case iterationMsg:
		m.iterations = append(m.iterations, plan.Iteration(msg))
	case searchDoneMsg:
		m.result = msg.res
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SearchModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Dimension Search"))
	b.WriteString("\n\n")

	for _, it := range m.iterations {
		line := fmt.Sprintf("#%-2d Sparren %-8s Pfette %-8s Zange %-8s",
			it.N, it.Sections.Rafter.Label(), it.Sections.Beam.Label(), it.Sections.Tie.Label())
		if len(it.Failed) == 0 {
			b.WriteString(StyleSuccess.Render(iconSuccess) + " " + StyleValue.Render(line))
		} else {
			b.WriteString(styleIconError.Render(iconError) + " " + StyleValue.Render(line) +
				StyleDim.Render(fmt.Sprintf("  %d Nachweise offen", len(it.Failed))))
		}
		b.WriteString("\n")
	}

	if !m.done {
		b.WriteString("\n" + StyleDim.Render("q to abort"))
	}
	return b.String()
}

// runPlanWatch drives the plan run under a live TUI. The runner executes
// in a goroutine and feeds iterations into the program; quitting the TUI
// cancels the run.
func (c *CLI) runPlanWatch(ctx context.Context, input frame.UserInput, configPath string, noCache bool, output string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(SearchModel{}, tea.WithContext(ctx))

	runner, err := c.newRunner(configPath, noCache, func(it plan.Iteration) {
		p.Send(iterationMsg(it))
	})
	if err != nil {
		return err
	}

	go func() {
		res, err := runner.Execute(ctx, input)
		p.Send(searchDoneMsg{res: res, err: err})
	}()

	final, err := p.Run()
	cancel()
	if err != nil {
		return err
	}

	m, ok := final.(SearchModel)
	if !ok || !m.done {
		return ctx.Err()
	}
	if m.err != nil {
		printError("Plan failed: %s", m.err)
		return m.err
	}

	printSuccess("Converged after %d iterations", len(m.result.Iters))
	printNewline()
	fmt.Println(renderPartsTable(m.result.Parts))
	printNewline()
	fmt.Print(renderSummary(m.result))

	if output != "" {
		if err := writeResultFile(m.result, output); err != nil {
			return err
		}
		printDetail("Written: %s", output)
	}
	return nil
}
