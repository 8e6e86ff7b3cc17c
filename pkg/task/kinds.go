package task

import (
	"fmt"
	"strings"
)

// Owner classifies who is responsible for the situation behind a task.
type Owner string

const (
	OwnerUnset  Owner = ""
	OwnerMine   Owner = "Mine"
	OwnerTheirs Owner = "Theirs"
	OwnerShared Owner = "Shared"
)

// Owners lists the ownership values in the order the wizard offers them.
func Owners() []Owner {
	return []Owner{OwnerMine, OwnerShared, OwnerTheirs}
}

// ParseOwner accepts the canonical names, lower case forms and the zh-TW
// labels used by older exports.
func ParseOwner(s string) (Owner, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mine", "me", "我的":
		return OwnerMine, nil
	case "theirs", "them", "別人的":
		return OwnerTheirs, nil
	case "shared", "both", "共同的":
		return OwnerShared, nil
	case "":
		return OwnerUnset, nil
	}
	return OwnerUnset, fmt.Errorf("task: unknown owner %q (expected mine, theirs or shared)", s)
}

// Perspective is one of the reflective lenses applied while journaling.
type Perspective string

const (
	PerspectiveReality  Perspective = "reality"
	PerspectiveDistance Perspective = "distance"
	PerspectiveValue    Perspective = "value"
	PerspectiveObserve  Perspective = "observe"
)

// Perspectives lists every lens in display order.
func Perspectives() []Perspective {
	return []Perspective{PerspectiveReality, PerspectiveDistance, PerspectiveValue, PerspectiveObserve}
}

func ParsePerspective(s string) (Perspective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reality", "現實":
		return PerspectiveReality, nil
	case "distance", "距離":
		return PerspectiveDistance, nil
	case "value", "價值":
		return PerspectiveValue, nil
	case "observe", "觀察":
		return PerspectiveObserve, nil
	case "":
		return "", nil
	}
	return "", fmt.Errorf("task: unknown perspective %q", s)
}

// Polarity tells whether the event was experienced as positive or negative.
type Polarity string

const (
	Positive Polarity = "Positive"
	Negative Polarity = "Negative"
)

func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive", "pos", "+", "正向":
		return Positive, nil
	case "negative", "neg", "-", "負向":
		return Negative, nil
	case "":
		return "", nil
	}
	return "", fmt.Errorf("task: unknown polarity %q", s)
}

// Aspect is the optional tag picked next to the focus sentence.
type Aspect string

const (
	AspectNone   Aspect = ""
	AspectSelf   Aspect = "self"
	AspectView   Aspect = "view"
	AspectFuture Aspect = "future"
)

// Aspects lists the selectable aspects.
func Aspects() []Aspect {
	return []Aspect{AspectSelf, AspectView, AspectFuture}
}

func ParseAspect(s string) (Aspect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "self", "自己":
		return AspectSelf, nil
	case "view", "看法":
		return AspectView, nil
	case "future", "未來":
		return AspectFuture, nil
	case "", "none":
		return AspectNone, nil
	}
	return AspectNone, fmt.Errorf("task: unknown aspect %q", s)
}
