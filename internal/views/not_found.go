package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// NotFound is the page body for a path that names no known resource.
func NotFound(name string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="not-found"><h4>Not Found</h4><p>There is no page for &quot;`+
			templ.EscapeString(name)+`&quot;.</p><p><a href="/">Back to the dashboard</a></p></section>`)
		return err
	})
}
