package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/visual-poker/pokerxl/internal/convert"
	"github.com/visual-poker/pokerxl/internal/report"
)

// IsAffirmative reports whether a typed answer means yes. Portuguese and
// English forms are accepted, case-insensitively.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "sim", "y", "yes":
		return true
	}
	return false
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type promptOptions struct {
	yes        bool
	dryRun     bool
	outputPath string
}

// newConfirm prints the report and then asks whether to save. --yes and
// --dry-run answer without asking.
func newConfirm(in io.Reader, out io.Writer, opts promptOptions) convert.ConfirmFunc {
	answer := ask(in, out, opts.outputPath)
	switch {
	case opts.dryRun:
		answer = convert.Always(false)
	case opts.yes:
		answer = convert.Always(true)
	}

	return func(res *convert.Result) (bool, error) {
		fmt.Fprintln(out, report.Format(res))
		ok, err := answer(res)
		if opts.dryRun {
			fmt.Fprintln(out, "Dry run, nothing written.")
		}
		return ok, err
	}
}

// ask returns a ConfirmFunc that puts the save question to the user, through
// a form on a terminal and a plain line read otherwise.
func ask(in io.Reader, out io.Writer, outputPath string) convert.ConfirmFunc {
	question := fmt.Sprintf("Is the data correct? Save %s?", outputPath)
	return func(*convert.Result) (bool, error) {
		if isTerminal(in) {
			return askForm(question)
		}
		return askLine(in, out, question)
	}
}

func askForm(question string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithShowHelp(false).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("prompt: %w", err)
	}
	return ok, nil
}

func askLine(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s (s/n): ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	fmt.Fprintln(out)
	return IsAffirmative(line), nil
}
