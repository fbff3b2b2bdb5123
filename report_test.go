package pdo

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderText(t *testing.T) {
	fields := []reportField{
		{"Error", "no such table: nope"},
		{"SQL Statement", "SELECT * FROM nope;"},
		{"Bind Parameters", "(none)"},
	}
	got := renderText(fields)

	if !strings.HasPrefix(got, "SQL Error\n----") {
		t.Errorf("text report missing header: %q", got)
	}
	for _, want := range []string{
		"\n\n Error:\nno such table: nope",
		"\n\n SQL Statement:\nSELECT * FROM nope;",
		"\n\n Bind Parameters:\n(none)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("text report missing %q in %q", want, got)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	fields := []reportField{
		{"Error", "syntax error near \"<\""},
		{"SQL Statement", "SELECT 1;"},
	}
	got := renderHTML(fields)

	if !strings.Contains(got, "<style>") || !strings.Contains(got, `<div class="pdo-error">`) {
		t.Errorf("html report missing wrapper: %q", got)
	}
	if !strings.Contains(got, "<label>Error:</label>") {
		t.Errorf("html report missing label: %q", got)
	}
	// Values must be escaped.
	if !strings.Contains(got, "&#34;&lt;&#34;") {
		t.Errorf("html report not escaped: %q", got)
	}
}

func TestFormatBind(t *testing.T) {
	tests := []struct {
		name string
		args BindArgs
		want string
	}{
		{"empty", BindArgs{}, "(none)"},
		{"named sorted", BindArgs{Named: BindMap{"b": 2, "a": 1}}, ":a = 1, :b = 2"},
		{"positional", BindArgs{Positional: []any{1, "x"}}, "[1 x]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatBind(tt.args); got != tt.want {
				t.Errorf("formatBind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetErrorCallbackFormatFallback(t *testing.T) {
	c := NewConn(nil, "sqlite")

	var got string
	c.SetErrorCallback(func(msg string) { got = msg }, Format("xml"))
	c.report(errors.New("boom"), "SELECT 1;", BindArgs{})

	if !strings.Contains(got, `<div class="pdo-error">`) {
		t.Errorf("unknown format should fall back to html, got %q", got)
	}
}

func TestSetErrorCallbackNilKeepsPrior(t *testing.T) {
	c := NewConn(nil, "sqlite")

	calls := 0
	c.SetErrorCallback(func(string) { calls++ }, FormatText)
	c.SetErrorCallback(nil, FormatHTML)

	c.report(errors.New("boom"), "SELECT 1;", BindArgs{})
	if calls != 1 {
		t.Errorf("prior sink should survive nil reconfiguration, calls = %d", calls)
	}
}

func TestReportWithoutSinkIsNoop(t *testing.T) {
	c := NewConn(nil, "sqlite")
	// Must not panic or render anything.
	c.report(errors.New("boom"), "SELECT 1;", BindArgs{})
}

func TestReportIncludesCallerLocation(t *testing.T) {
	c := NewConn(nil, "sqlite")

	var got string
	c.SetErrorCallback(func(msg string) { got = msg }, FormatText)
	c.report(errors.New("boom"), "SELECT 1;", BindArgs{})

	if !strings.Contains(got, "Backtrace:") {
		t.Errorf("report missing backtrace field: %q", got)
	}
}
