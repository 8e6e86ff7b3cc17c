// Package prompt holds the line-oriented prompts used by commands that are
// not worth a full screen UI: confirmations, picking a task and short text
// answers.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/unload/pkg/printers"
	"tableflip.dev/unload/pkg/task"
)

// Prompter is implemented by IO. Runners take it so tests can answer
// without a terminal.
type Prompter interface {
	Confirm(label string) (bool, error)
	Text(label, def string, required bool) (string, error)
	SelectTask(label string, tasks []*task.Task) (*task.Task, error)
}

var _ Prompter = IO{}

// IO is where prompts read from and draw to. Nil fields fall back to the
// terminal.
type IO struct {
	In  io.Reader
	Out io.Writer
}

func (p IO) stdin() io.ReadCloser {
	if p.In == nil {
		return nil
	}
	return io.NopCloser(p.In)
}

func (p IO) stdout() io.WriteCloser {
	if p.Out == nil {
		return nil
	}
	return NopCloser(p.Out)
}

var templates = &promptui.PromptTemplates{
	Prompt:  "{{ . }} : ",
	Valid:   "{{ . | green }} : ",
	Invalid: "{{ . | red }} : ",
	Success: "{{ . | bold }} : ",
}

// Confirm asks a yes/no question. Anything but an explicit yes is a no.
func (p IO) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}
	result, err := prompt.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	yes, err := ParseBool(result)
	if err != nil {
		return false, nil
	}
	return yes, nil
}

// Text asks for a line of text. def is used for an empty answer; required
// rejects an empty result.
func (p IO) Text(label, def string, required bool) (string, error) {
	validate := func(input string) error {
		if required && strings.TrimSpace(input) == "" && def == "" {
			return errors.New("empty")
		}
		return nil
	}
	if def != "" {
		label = fmt.Sprintf(`%s ["%s"]`, label, def)
	}
	prompt := promptui.Prompt{
		Label:     label,
		Templates: templates,
		Validate:  validate,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}
	result, err := prompt.Run()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(result) == "" {
		result = def
	}
	return strings.TrimSpace(result), nil
}

type taskItem struct {
	ID      string
	When    string
	Owner   string
	Level   int
	Summary string
	Details string
}

// SelectTask lets the user pick one of tasks with a searchable list.
func (p IO) SelectTask(label string, tasks []*task.Task) (*task.Task, error) {
	if len(tasks) == 0 {
		return nil, errors.New("prompt: nothing to choose from")
	}
	items := make([]taskItem, len(tasks))
	for i, t := range tasks {
		items[i] = taskItem{
			ID:      printers.ShortID(t.ID),
			When:    t.CreatedAt.Local().Format("Jan 2 15:04"),
			Owner:   string(t.Owner),
			Level:   t.ControlLevel,
			Summary: strings.Join(t.Category, ", "),
			Details: t.Title(),
		}
	}

	selectTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .When | faint }} {{ .Summary | bold }} {{ .Owner | green }} {{ .Level }}%",
		Inactive: "   {{ .When | faint }} {{ .Summary }} {{ .Owner | cyan }} {{ .Level }}%",
		Selected: "{{ .Summary | bold }} ({{ .ID }})",
		Details: `
--------- Details ----------
{{ .Details }}
`,
	}

	searcher := func(input string, index int) bool {
		item := items[index]
		name := strings.Replace(strings.ToLower(item.Summary+item.Details), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)

		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     items,
		Templates: selectTemplates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return tasks[i], nil
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "NO", "No", "":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser returns a WriteCloser with a no-op Close method wrapping
// the provided Writer w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}
