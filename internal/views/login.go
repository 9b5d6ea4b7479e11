package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Login renders the standalone sign-in page. message is shown above the form when set.
func Login(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<title>` + templ.EscapeString(ComposeTitle("Login")) + `</title>`)
		b.WriteString(`<style>` + stylesheet + `form.login{max-width:320px;margin:96px auto;display:flex;flex-direction:column;gap:12px}</style>`)
		b.WriteString(`</head><body><form class="login card" method="post" action="/login">`)
		b.WriteString(`<h6>` + AppTitle + `</h6>`)
		if message != "" {
			b.WriteString(`<p class="error" role="alert">` + templ.EscapeString(message) + `</p>`)
		}
		b.WriteString(`<label>Username <input name="username" autocomplete="username" required></label>`)
		b.WriteString(`<label>Password <input name="password" type="password" autocomplete="current-password" required></label>`)
		b.WriteString(`<button type="submit">Sign in</button></form></body></html>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
