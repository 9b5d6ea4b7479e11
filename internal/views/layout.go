package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/models"
)

const AppTitle = "Sifter Admin Panel"

// NavDashboard marks the dashboard as the active menu entry.
const NavDashboard = "dashboard"

const stylesheet = `body{margin:0;font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,sans-serif;background:#fafafa;color:#212121}` +
	`header.appbar{display:flex;align-items:center;gap:16px;background:#1976d2;color:#fff;padding:0 24px;height:64px}` +
	`header.appbar h6{flex:1;margin:0;font-size:1.25rem;font-weight:500}` +
	`header.appbar button{background:transparent;border:1px solid #fff;color:#fff;padding:6px 16px;border-radius:4px;cursor:pointer}` +
	`.shell{display:flex}nav.menu{width:220px;padding:16px 0}nav.menu a{display:block;padding:10px 24px;color:#424242;text-decoration:none}` +
	`nav.menu a.active{background:#e3f2fd;color:#1976d2}main{flex:1;padding:24px}` +
	`.grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(240px,1fr));gap:24px}` +
	`.card{background:#fff;border-radius:4px;box-shadow:0 1px 3px rgba(0,0,0,.2);padding:16px}.card.wide{grid-column:1/-1}` +
	`.card h6{margin:0 0 8px;font-size:1.25rem;color:#1976d2}.card .value{font-size:3rem;margin:0}` +
	`table.datagrid{width:100%;border-collapse:collapse;background:#fff}table.datagrid th,table.datagrid td{padding:6px 16px;border-bottom:1px solid #e0e0e0;text-align:left}`

// Page wraps body in the admin chrome: app bar with logout, navigation menu and main area.
// active is the resource name or NavDashboard.
func Page(title, active string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>` + templ.EscapeString(ComposeTitle(title)) + `</title>`)
		b.WriteString(`<style>` + stylesheet + `</style></head><body>`)
		b.WriteString(`<header class="appbar"><h6>` + AppTitle + `</h6>`)
		b.WriteString(`<form method="post" action="/logout"><button type="submit">Logout</button></form></header>`)
		b.WriteString(`<div class="shell"><nav class="menu">`)
		b.WriteString(navLink("/", "Dashboard", active == NavDashboard))
		for _, r := range models.Resources {
			b.WriteString(navLink("/"+r.String(), r.Label(), active == r.String()))
		}
		b.WriteString(`</nav><main>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></div></body></html>`)
		return err
	})
}

// ComposeTitle appends the panel name unless title already carries it.
func ComposeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" || title == AppTitle {
		return AppTitle
	}
	if strings.HasSuffix(title, " | "+AppTitle) {
		return title
	}
	return title + " | " + AppTitle
}

func navLink(href, label string, active bool) string {
	class := ""
	if active {
		class = ` class="active"`
	}
	return `<a href="` + templ.EscapeString(href) + `"` + class + `>` + templ.EscapeString(label) + `</a>`
}
