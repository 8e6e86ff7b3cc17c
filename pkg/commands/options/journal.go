package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/unload/pkg/task"
)

// ReflectionOptions are journal edits given as flags. Only flags that were
// set are applied.
type ReflectionOptions struct {
	Focus       string
	Notes       map[string]string
	Message     string
	Perspective string
	Worry       []string

	cmd *cobra.Command
}

func AddReflectionArgs(cmd *cobra.Command, o *ReflectionOptions) {
	o.cmd = cmd
	cmd.Flags().StringVarP(&o.Focus, "focus", "f", "",
		"Replace the focus sentence.")
	cmd.Flags().StringToStringVarP(&o.Notes, "note", "n", nil,
		`Set a note per perspective, example: --note distance="in a year this is small". An empty note removes it.`)
	cmd.Flags().StringVarP(&o.Message, "message", "m", "",
		"Replace the note to yourself.")
	cmd.Flags().StringVarP(&o.Perspective, "perspective", "p", "",
		"The lens you reflected through: reality, distance, value or observe.")
	cmd.Flags().StringSliceVarP(&o.Worry, "worry", "w", nil,
		"Replace the worry labels.")
}

func (o *ReflectionOptions) changed(name string) bool {
	return o.cmd != nil && o.cmd.Flags().Changed(name)
}

// FocusEdit returns the focus edit, nil when not given.
func (o *ReflectionOptions) FocusEdit() *string {
	if !o.changed("focus") {
		return nil
	}
	return &o.Focus
}

// MessageEdit returns the message edit, nil when not given.
func (o *ReflectionOptions) MessageEdit() *string {
	if !o.changed("message") {
		return nil
	}
	return &o.Message
}

// PerspectiveEdit returns the perspective edit, nil when not given.
func (o *ReflectionOptions) PerspectiveEdit() (*task.Perspective, error) {
	if !o.changed("perspective") {
		return nil, nil
	}
	p, err := task.ParsePerspective(o.Perspective)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// NoteEdits returns the notes keyed by perspective.
func (o *ReflectionOptions) NoteEdits() (map[task.Perspective]string, error) {
	if len(o.Notes) == 0 {
		return nil, nil
	}
	out := make(map[task.Perspective]string, len(o.Notes))
	for k, v := range o.Notes {
		p, err := task.ParsePerspective(k)
		if err != nil {
			return nil, err
		}
		if p == "" {
			continue
		}
		out[p] = v
	}
	return out, nil
}

// WorryEdit returns the worry edit, nil when not given.
func (o *ReflectionOptions) WorryEdit() []string {
	if !o.changed("worry") {
		return nil
	}
	if o.Worry == nil {
		return []string{}
	}
	return o.Worry
}

// Any reports whether any edit flag was given.
func (o *ReflectionOptions) Any() bool {
	for _, name := range []string{"focus", "note", "message", "perspective", "worry"} {
		if o.changed(name) {
			return true
		}
	}
	return false
}
