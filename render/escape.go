// Package render turns API entities into HTML fragments.
//
// Every value interpolated through Markup is escaped unless it is already
// an HTML value. Markup that was stored as a plain string, such as a page
// region's content, comes back as HTML only through Trusted.
package render

import (
	"fmt"
	"strconv"
	"strings"
)

// HTML is markup that must not be escaped again.
type HTML string

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape encodes & < > " ' and leaves every other character alone.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Trusted marks markup previously produced by Markup as safe to embed.
func Trusted(s string) HTML {
	return HTML(s)
}

// Markup is fmt.Sprintf with escaping applied to every argument that is
// not HTML.
func Markup(format string, args ...any) HTML {
	safe := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case HTML:
			safe[i] = string(v)
		case string:
			safe[i] = Escape(v)
		case int:
			safe[i] = strconv.Itoa(v)
		default:
			safe[i] = Escape(fmt.Sprint(v))
		}
	}
	return HTML(fmt.Sprintf(format, safe...))
}

func join[T any](items []T, fn func(T) HTML) HTML {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(string(fn(item)))
	}
	return HTML(b.String())
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
