package task

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLegacyReflection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Reflection
	}{{
		name: "english headings",
		text: "Focus: the interview tomorrow\nAspect: future\nReality: I prepared for two weeks.\nDistance: In a year this is one of many.\nFinal message: You are ready enough.",
		want: Reflection{
			Focus:  "the interview tomorrow",
			Aspect: AspectFuture,
			Notes: map[Perspective]string{
				PerspectiveReality:  "I prepared for two weeks.",
				PerspectiveDistance: "In a year this is one of many.",
			},
			Message: "You are ready enough.",
		},
	}, {
		name: "zh-TW bracket headings over several lines",
		text: "明天的面試\n【現實】\n我準備了兩週。\n也練習過了。\n【價值】：我重視成長\n給自己的話：慢慢來",
		want: Reflection{
			Focus: "明天的面試",
			Notes: map[Perspective]string{
				PerspectiveReality: "我準備了兩週。\n也練習過了。",
				PerspectiveValue:   "我重視成長",
			},
			Message: "慢慢來",
		},
	}, {
		name: "mixed locales",
		text: "焦點：搬家\nObserve: my shoulders are tense",
		want: Reflection{
			Focus: "搬家",
			Notes: map[Perspective]string{PerspectiveObserve: "my shoulders are tense"},
		},
	}, {
		name: "bracket headings with text on the same line",
		text: "焦點：明天的面試\n【現實】我準備好了\n[Distance] far from now",
		want: Reflection{
			Focus: "明天的面試",
			Notes: map[Perspective]string{
				PerspectiveReality:  "我準備好了",
				PerspectiveDistance: "far from now",
			},
		},
	}, {
		name: "plain text",
		text: "just a note",
		want: Reflection{Focus: "just a note"},
	}, {
		name: "empty",
		text: "",
		want: Reflection{},
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLegacyReflection(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected reflection (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLegacyReflectionIgnoresWordsStartingWithHeading(t *testing.T) {
	got := ParseLegacyReflection("Valuesome things are hard")
	if got.Focus != "Valuesome things are hard" || len(got.Notes) != 0 {
		t.Fatalf("unexpected parse: %+v", got)
	}
}
