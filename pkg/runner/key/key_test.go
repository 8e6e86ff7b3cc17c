package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestKey(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	k := Key{Out: &out}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	for _, want := range []string{"面試壓力", "擔心表現", "Mine", "60-100", "reality"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("legend is missing %q:\n%s", want, out.String())
		}
	}
}
