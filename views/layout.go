// Package views assembles full pages and swappable fragments from the
// controller state.
package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"nskk-web/render"
)

const htmxSrc = "https://unpkg.com/htmx.org@1.9.12"

func html(h render.HTML) templ.Component {
	return templ.Raw(string(h))
}

// seq renders components one after another.
func seq(parts ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, p := range parts {
			if err := p.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// wrap renders child between open and end.
func wrap(open string, child templ.Component, end string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, open); err != nil {
			return err
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, end)
		return err
	})
}

// region renders the live content of a region inside its container.
func region(tag, id, class string, content render.HTML) templ.Component {
	return html(render.Markup(`<%s id="%s" class="%s">%s</%s>`, tag, id, class, content, tag))
}

// OOB marks the first element of h for an htmx out-of-band swap.
func OOB(h render.HTML) templ.Component {
	return templ.Raw(strings.Replace(string(h), " id=", ` hx-swap-oob="true" id=`, 1))
}

// Layout wraps body in the HTML document shell.
func Layout(title string, body templ.Component) templ.Component {
	head := render.Markup(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<script src="%s"></script>
</head>
<body>
`, title, htmxSrc)
	return wrap(string(head), body, "\n</body>\n</html>\n")
}
