package pdo

import (
	"fmt"
	"html"
	"runtime"
	"sort"
	"strings"
)

// ErrorSink receives one rendered report per failed statement. Typical sinks
// write to a logger, a response body, or a debugging console.
type ErrorSink func(message string)

// Format selects how error reports are rendered before reaching the sink.
type Format string

const (
	FormatHTML Format = "html"
	FormatText Format = "text"
)

const modulePath = "github.com/gabrysiak/pdo-wrapper"

// SetErrorCallback installs the sink invoked on every statement failure. A
// nil sink is ignored and any prior configuration stays in effect. Unknown
// formats fall back to FormatHTML. Safe for concurrent use.
func (c *Conn) SetErrorCallback(sink ErrorSink, format Format) {
	if sink == nil {
		return
	}
	if format != FormatText {
		format = FormatHTML
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sink = sink
	c.format = format
}

// reportField keeps the record ordered; maps would shuffle the output.
type reportField struct {
	label string
	value string
}

// report renders the failure record and hands it to the configured sink.
// Without a sink this is a no-op: the caller still gets the error value,
// nothing is printed.
func (c *Conn) report(execErr error, query string, args BindArgs) {
	c.mu.RLock()
	sink, format := c.sink, c.format
	c.mu.RUnlock()
	if sink == nil {
		return
	}

	fields := []reportField{
		{"Error", execErr.Error()},
		{"SQL Statement", query},
		{"Bind Parameters", formatBind(args)},
	}
	if loc := callerLocation(); loc != "" {
		fields = append(fields, reportField{"Backtrace", loc})
	}

	if format == FormatText {
		sink(renderText(fields))
		return
	}
	sink(renderHTML(fields))
}

// formatBind renders bind values deterministically: named parameters sorted
// by name, positional parameters in order.
func formatBind(args BindArgs) string {
	if args.IsEmpty() {
		return "(none)"
	}
	if len(args.Named) > 0 {
		names := make([]string, 0, len(args.Named))
		for name := range args.Named {
			names = append(names, name)
		}
		sort.Strings(names)

		parts := make([]string, len(names))
		for i, name := range names {
			parts[i] = fmt.Sprintf(":%s = %v", name, args.Named[name])
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprintf("%v", args.Positional)
}

// callerLocation returns file:line of the first stack frame outside this
// module, pointing the report at the statement's call site.
func callerLocation() string {
	var pcs [16]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, modulePath) {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if !more {
			return ""
		}
	}
}

const htmlHeader = `<style>
.pdo-error { font-family: monospace; border: 1px solid #b00; padding: 8px; }
.pdo-error label { font-weight: bold; display: block; margin-top: 6px; }
</style>
<div class="pdo-error">
<h4>SQL Error</h4>
`

func renderHTML(fields []reportField) string {
	var b strings.Builder
	b.WriteString(htmlHeader)
	for _, f := range fields {
		fmt.Fprintf(&b, "<p><label>%s:</label>%s</p>\n", f.label, html.EscapeString(f.value))
	}
	b.WriteString("</div>")
	return b.String()
}

func renderText(fields []reportField) string {
	var b strings.Builder
	b.WriteString("SQL Error\n")
	b.WriteString(strings.Repeat("-", 40))
	for _, f := range fields {
		fmt.Fprintf(&b, "\n\n %s:\n%s", f.label, f.value)
	}
	return b.String()
}
