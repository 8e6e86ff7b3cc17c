package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/unload/pkg/history"
	"tableflip.dev/unload/pkg/task"
)

// HistoryOptions are the history filters.
type HistoryOptions struct {
	Search   string
	Window   string
	Category string
	Owner    string
	Sort     string
	Detail   bool
}

func AddHistoryArgs(cmd *cobra.Command, o *HistoryOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Only entries with a category or worry label containing this text.")
	cmd.Flags().StringVar(&o.Window, "window", string(history.WindowAll),
		"Time window: all, today, week or month.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", history.All,
		`Only entries in this category. "其他" or "Other" matches labels outside the list.`)
	cmd.Flags().StringVarP(&o.Owner, "owner", "o", history.All,
		"Only entries owned by: mine, shared or theirs.")
	cmd.Flags().StringVar(&o.Sort, "sort", string(history.SortNewest),
		"Order: newest or oldest.")
	cmd.Flags().BoolVarP(&o.Detail, "detail", "d", false,
		"Print each entry in full.")
}

// Query parses the flags into a history query.
func (o *HistoryOptions) Query() (history.Query, error) {
	window, err := history.ParseWindow(o.Window)
	if err != nil {
		return history.Query{}, err
	}
	order, err := history.ParseSort(o.Sort)
	if err != nil {
		return history.Query{}, err
	}
	var owner task.Owner
	if o.Owner != history.All {
		if owner, err = task.ParseOwner(o.Owner); err != nil {
			return history.Query{}, err
		}
	}
	category := o.Category
	if category == history.All {
		category = ""
	}
	return history.Query{
		Search:   o.Search,
		Window:   window,
		Category: category,
		Owner:    owner,
		Sort:     order,
	}, nil
}
