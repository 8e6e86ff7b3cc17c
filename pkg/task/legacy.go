package task

import (
	"strings"
)

type section int

const (
	sectionNone section = iota
	sectionFocus
	sectionAspect
	sectionNote
	sectionMessage
)

type heading struct {
	label       string
	section     section
	perspective Perspective
}

// Headings older releases wrote into the reflection blob. Several locales
// produced data, so every variant is recognised regardless of the current
// one. Longer labels come first so that prefixes do not shadow them.
var legacyHeadings = []heading{
	{"Final message", sectionMessage, ""},
	{"給自己的話", sectionMessage, ""},
	{"最後的話", sectionMessage, ""},
	{"Message", sectionMessage, ""},
	{"Focus", sectionFocus, ""},
	{"我在意的是", sectionFocus, ""},
	{"焦點", sectionFocus, ""},
	{"Aspect", sectionAspect, ""},
	{"面向", sectionAspect, ""},
	{"Reality", sectionNote, PerspectiveReality},
	{"現實面", sectionNote, PerspectiveReality},
	{"現實", sectionNote, PerspectiveReality},
	{"Distance", sectionNote, PerspectiveDistance},
	{"拉開距離", sectionNote, PerspectiveDistance},
	{"距離", sectionNote, PerspectiveDistance},
	{"Value", sectionNote, PerspectiveValue},
	{"價值觀", sectionNote, PerspectiveValue},
	{"價值", sectionNote, PerspectiveValue},
	{"Observe", sectionNote, PerspectiveObserve},
	{"觀察", sectionNote, PerspectiveObserve},
}

// ParseLegacyReflection splits a reflection blob written as labeled
// paragraphs ("Focus: ...", "【現實】...") back into its fields. Text before the
// first heading is taken as the focus sentence. A user-written line that
// happens to start with a heading is indistinguishable from a real heading;
// that is a property of the old format.
func ParseLegacyReflection(text string) Reflection {
	var (
		r       Reflection
		current = heading{section: sectionFocus}
		buf     []string
	)
	flush := func() {
		body := strings.TrimSpace(strings.Join(buf, "\n"))
		buf = buf[:0]
		if body == "" {
			return
		}
		switch current.section {
		case sectionFocus:
			r.Focus = joinParagraphs(r.Focus, body)
		case sectionAspect:
			if a, err := ParseAspect(body); err == nil {
				r.Aspect = a
			}
		case sectionNote:
			r = r.WithNote(current.perspective, joinParagraphs(r.Note(current.perspective), body))
		case sectionMessage:
			r.Message = joinParagraphs(r.Message, body)
		}
	}

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if h, rest, ok := matchHeading(line); ok {
			flush()
			current = h
			if rest != "" {
				buf = append(buf, rest)
			}
			continue
		}
		buf = append(buf, line)
	}
	flush()
	return r
}

func matchHeading(line string) (heading, string, bool) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimLeft(trimmed, "#*【[ ")
	for _, h := range legacyHeadings {
		if !strings.HasPrefix(strings.ToLower(trimmed), strings.ToLower(h.label)) {
			continue
		}
		rest := strings.TrimLeft(trimmed[len(h.label):], "* ")
		closed := strings.HasPrefix(rest, "】") || strings.HasPrefix(rest, "]")
		rest = strings.TrimLeft(rest, "*】] ")
		switch {
		case strings.HasPrefix(rest, ":"):
			rest = rest[len(":"):]
		case strings.HasPrefix(rest, "："):
			rest = rest[len("："):]
		case closed:
			// A bracketed label may carry its text on the same line.
		default:
			continue
		}
		return h, strings.TrimSpace(rest), true
	}
	return heading{}, "", false
}

func joinParagraphs(a, b string) string {
	if a == "" {
		return b
	}
	return a + "\n" + b
}
