package xerr

import (
	"errors"
	"testing"

	"github.com/vtrender/termframe/internal/suggest"
)

func TestErrorFormatsWithAndWithoutWrapped(t *testing.T) {
	plain := Config("bad width", nil)
	if plain.Error() != "bad width" {
		t.Errorf("expected bare message, got %q", plain.Error())
	}

	wrapped := IO("read file", errors.New("no such file"))
	if wrapped.Error() != "read file: no such file" {
		t.Errorf("expected wrapped message, got %q", wrapped.Error())
	}
}

func TestUnwrapExposesUnderlyingError(t *testing.T) {
	underlying := errors.New("boom")
	err := IO("doing a thing", underlying)

	if !errors.Is(err, underlying) {
		t.Error("expected errors.Is to find the wrapped error")
	}
}

func TestKindOfDefaultsToIOForUntypedErrors(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != KindIO {
		t.Errorf("expected untyped error to default to KindIO, got %v", got)
	}
	if got := KindOf(Usage("bad flag")); got != KindUsage {
		t.Errorf("expected Usage() to carry KindUsage, got %v", got)
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{Config("x", nil), 1},
		{IO("x", nil), 1},
		{Rendering("x", nil), 1},
		{Usage("x"), 2},
	}
	for _, c := range cases {
		if got := ExitCode(c.err); got != c.want {
			t.Errorf("ExitCode(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestUnknownNameWithoutSuggestions(t *testing.T) {
	err := UnknownName("theme", "nonsense", suggest.New("nonsense", nil))
	want := `unknown theme "nonsense"`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestUnknownNameWithSuggestions(t *testing.T) {
	hint := suggest.New("draclua", []string{"dracula"})
	err := UnknownName("theme", "draclua", hint)
	want := `unknown theme "draclua", did you mean: dracula?`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
