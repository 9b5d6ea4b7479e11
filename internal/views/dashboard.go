package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DashboardStats holds the counters shown on the dashboard cards.
type DashboardStats struct {
	TotalUsers     int
	ActiveChats    int
	PendingReports int
}

// StaticDashboardStats are the placeholder counters; nothing computes them.
var StaticDashboardStats = DashboardStats{
	TotalUsers:     1247,
	ActiveChats:    89,
	PendingReports: 12,
}

const welcomeText = "Welcome to the Sifter Admin Panel. Use the navigation menu to manage users, chat rooms, and moderation reports."

func Dashboard(stats DashboardStats) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := message.NewPrinter(language.English)

		var b strings.Builder
		b.WriteString(`<section class="dashboard"><h4>Sifter Admin Dashboard</h4><div class="grid">`)
		b.WriteString(counterCard("Total Users", p.Sprintf("%d", stats.TotalUsers)))
		b.WriteString(counterCard("Active Chats", p.Sprintf("%d", stats.ActiveChats)))
		b.WriteString(counterCard("Pending Reports", p.Sprintf("%d", stats.PendingReports)))
		b.WriteString(`<div class="card wide"><h6>Quick Actions</h6><p>` + welcomeText + `</p></div>`)
		b.WriteString(`</div></section>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func counterCard(label, value string) string {
	return `<div class="card"><h6>` + templ.EscapeString(label) + `</h6><p class="value">` +
		templ.EscapeString(value) + `</p></div>`
}
