package history

import "context"

// Deleter removes tasks. *app.Service satisfies it.
type Deleter interface {
	Delete(ctx context.Context, id string) error
}

// DeleteFlow is the mark then confirm sequence guarding deletes.
type DeleteFlow struct {
	pending string
}

// Mark selects id for deletion, replacing any earlier mark.
func (f *DeleteFlow) Mark(id string) { f.pending = id }

// Pending returns the marked id.
func (f *DeleteFlow) Pending() (string, bool) { return f.pending, f.pending != "" }

// Cancel clears the mark without deleting anything.
func (f *DeleteFlow) Cancel() { f.pending = "" }

// Confirm deletes the marked task and clears the mark. Without a mark it
// does nothing and reports false.
func (f *DeleteFlow) Confirm(ctx context.Context, d Deleter) (bool, error) {
	id := f.pending
	if id == "" {
		return false, nil
	}
	f.pending = ""
	if err := d.Delete(ctx, id); err != nil {
		return true, err
	}
	return true, nil
}
