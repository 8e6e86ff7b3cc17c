// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/unload/pkg/task"
	"tableflip.dev/unload/pkg/wizard"
)

// AddOptions are the answers of an entry given as flags.
type AddOptions struct {
	Category      []string
	OtherCategory string
	Worry         []string
	OtherWorry    string
	Focus         string
	Aspect        string
	Owner         string
	Control       int
	Message       string
	Polarity      string
}

func AddEntryArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringSliceVarP(&o.Category, "category", "c", nil,
		`Category of the worry, at most two. Use "其他" or "Other" with --other-category.`)
	cmd.Flags().StringVar(&o.OtherCategory, "other-category", "",
		"Free text category used with Other.")
	cmd.Flags().StringSliceVarP(&o.Worry, "worry", "w", nil,
		"What the worry is about.")
	cmd.Flags().StringVar(&o.OtherWorry, "other-worry", "",
		"Free text worry used with Other.")
	cmd.Flags().StringVarP(&o.Focus, "focus", "f", "",
		"One sentence on what is on your mind.")
	cmd.Flags().StringVar(&o.Aspect, "aspect", "",
		"Which aspect weighs most: self, view or future.")
	cmd.Flags().StringVarP(&o.Owner, "owner", "o", "",
		"Whose it is: mine, shared or theirs.")
	cmd.Flags().IntVar(&o.Control, "control", wizard.DefaultControl,
		"How much of it you can control, 0-100.")
	cmd.Flags().StringVarP(&o.Message, "message", "m", "",
		"A short note to yourself.")
	cmd.Flags().StringVar(&o.Polarity, "polarity", "",
		"Positive or Negative, Negative when unset.")
}

// Answers parses the flags into wizard answers.
func (o *AddOptions) Answers() (wizard.Answers, error) {
	owner, err := task.ParseOwner(o.Owner)
	if err != nil {
		return wizard.Answers{}, err
	}
	aspect, err := task.ParseAspect(o.Aspect)
	if err != nil {
		return wizard.Answers{}, err
	}
	polarity, err := task.ParsePolarity(o.Polarity)
	if err != nil {
		return wizard.Answers{}, err
	}
	return wizard.Answers{
		Category:      o.Category,
		OtherCategory: o.OtherCategory,
		Worry:         o.Worry,
		OtherWorry:    o.OtherWorry,
		Focus:         o.Focus,
		Aspect:        aspect,
		Owner:         owner,
		ControlLevel:  o.Control,
		Message:       o.Message,
		Polarity:      polarity,
	}, nil
}
