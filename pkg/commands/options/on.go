package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOMonth = "2006-1"
)

// OnOptions pick the day counts are taken on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Count as of a date, example: --on="2024-5-16" or --on="2024-5" for the end of that month.`)
}

// GetOn returns the chosen time, or now when --on is unset.
func (o *OnOptions) GetOn() (time.Time, error) {
	if o.OnString == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err == nil {
		return t.Add(24*time.Hour - time.Second), nil
	}
	t, err = time.ParseInLocation(layoutISOMonth, o.OnString, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t.AddDate(0, 1, 0).Add(-time.Second), nil
}
