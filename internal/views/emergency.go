package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const emergencyPage = `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
	`<title>Emergency Logout | ` + AppTitle + `</title></head>` +
	`<body class="emergency-logout"><h1>Emergency Logout</h1>` +
	`<p>Your session has been cleared.</p>` +
	`<p><a href="/login">Return to login</a></p></body></html>`

// EmergencyLogout is the standalone escape page. It never includes the admin chrome.
func EmergencyLogout() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, emergencyPage)
		return err
	})
}
