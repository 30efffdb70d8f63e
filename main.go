package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/dbmagic/dbmagic/core"
	"github.com/dbmagic/dbmagic/magic"
	"github.com/dbmagic/dbmagic/output"
)

// shell adapts the magic dispatcher to an interactive prompt.
// %%sql opens a multi-line cell that is executed on the first blank line.
type shell struct {
	handler   *magic.Handler
	namespace *core.Namespace
	display   *output.Display
	logger    *output.Logger

	inCell    bool
	cellArgs  string
	cellLines []string
}

func (s *shell) livePrefix() (string, bool) {
	if s.inCell {
		return "   ...> ", true
	}
	return "", false
}

func (s *shell) execute(in string) {
	if s.inCell {
		if strings.TrimSpace(in) == "" {
			s.inCell = false
			s.handler.ExecuteCell(s.cellArgs, strings.Join(s.cellLines, "\n"))
			s.cellArgs = ""
			s.cellLines = nil
			return
		}
		s.cellLines = append(s.cellLines, in)
		return
	}

	line := strings.TrimSpace(in)
	switch {
	case line == "":

	case line == "exit" || line == "quit":
		s.close()
		os.Exit(0)

	case strings.HasPrefix(line, "%%sql"):
		s.inCell = true
		s.cellArgs = strings.TrimSpace(strings.TrimPrefix(line, "%%sql"))

	case strings.HasPrefix(line, "%sql"):
		s.handler.ExecuteLine(strings.TrimSpace(strings.TrimPrefix(line, "%sql")))

	case strings.HasPrefix(line, "%config"):
		rest := strings.TrimSpace(strings.TrimPrefix(line, "%config"))
		s.handler.ShowConfig(rest == "--show-auth")

	case line == "%calls":
		s.handler.ShowCalls()

	case strings.HasPrefix(line, "%export"):
		fields := strings.Fields(strings.TrimPrefix(line, "%export"))
		if len(fields) != 3 {
			s.display.Infof("usage: %%export <variable> <csv|json|table> <path>")
			return
		}
		s.handler.Export(fields[0], fields[1], fields[2])

	case line == "%vars":
		for _, name := range s.namespace.Names() {
			val, _ := s.namespace.Get(name)
			s.display.Infof("  %s = %v", name, val)
		}

	case strings.HasPrefix(line, "%"):
		s.display.Infof("unknown magic command: %s", strings.Fields(line)[0])

	default:
		// bare 'name = value' lines populate the namespace
		if name, value, ok := magic.SplitAssignment(line); ok {
			s.namespace.Set(name, core.ParseLiteral(value))
			return
		}
		s.display.Infof("unrecognized input - use %%sql <query>, %%config or 'name = value'")
	}
}

func (s *shell) complete(d prompt.Document) []prompt.Suggest {
	if s.inCell || d.TextBeforeCursor() == "" {
		return nil
	}

	suggestions := []prompt.Suggest{
		{Text: "%sql", Description: "run a single-line query"},
		{Text: "%%sql", Description: "open a multi-line query cell"},
		{Text: "%config", Description: "show resolved configuration"},
		{Text: "%calls", Description: "show the session call log"},
		{Text: "%export", Description: "write a result variable to a file"},
		{Text: "%vars", Description: "list namespace variables"},
		{Text: "exit", Description: "leave the session"},
	}

	return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
}

func (s *shell) close() {
	s.handler.Close()
	s.logger.Close()
}

func main() {
	logger := output.NewLogger()
	display := output.NewDisplay(os.Stdout)
	namespace := core.NewNamespace()

	s := &shell{
		handler:   magic.New(namespace, display, logger),
		namespace: namespace,
		display:   display,
		logger:    logger,
	}
	defer s.close()

	fmt.Println("dbmagic - type %sql <query>, %%sql for a cell or %config to check setup")

	p := prompt.New(
		s.execute,
		s.complete,
		prompt.OptionTitle("dbmagic"),
		prompt.OptionPrefix("dbmagic> "),
		prompt.OptionLivePrefix(s.livePrefix),
	)
	p.Run()
}
