package task

import "strings"

// Reflection is the structured journal text attached to a task.
type Reflection struct {
	Focus   string                 `json:"focus,omitempty"`
	Aspect  Aspect                 `json:"aspect,omitempty"`
	Notes   map[Perspective]string `json:"notes,omitempty"`
	Message string                 `json:"message,omitempty"`
}

// Note returns the note written under p.
func (r Reflection) Note(p Perspective) string {
	return r.Notes[p]
}

// WithNote returns a copy of r with the note for p replaced. A blank note
// removes the entry.
func (r Reflection) WithNote(p Perspective, text string) Reflection {
	cp := r.Clone()
	text = strings.TrimSpace(text)
	if text == "" {
		delete(cp.Notes, p)
		if len(cp.Notes) == 0 {
			cp.Notes = nil
		}
		return cp
	}
	if cp.Notes == nil {
		cp.Notes = make(map[Perspective]string, 1)
	}
	cp.Notes[p] = text
	return cp
}

// IsZero reports whether nothing has been written.
func (r Reflection) IsZero() bool {
	return r.Focus == "" && r.Aspect == AspectNone && len(r.Notes) == 0 && r.Message == ""
}

func (r Reflection) Clone() Reflection {
	cp := r
	if r.Notes != nil {
		cp.Notes = make(map[Perspective]string, len(r.Notes))
		for k, v := range r.Notes {
			cp.Notes[k] = v
		}
	}
	return cp
}
