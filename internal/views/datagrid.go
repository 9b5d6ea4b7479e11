package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/models"
)

type FieldKind int

const (
	TextField FieldKind = iota
	EmailField
)

// Column is one datagrid column bound to a record field.
type Column struct {
	Source string
	Kind   FieldKind
}

// ColumnsFor returns the columns of the list view for r, in display order.
func ColumnsFor(r models.Resource) []Column {
	switch r {
	case models.ResourceUsers:
		return []Column{
			{Source: "id"}, {Source: "username"}, {Source: "email", Kind: EmailField},
			{Source: "status"}, {Source: "score"}, {Source: "violations"},
		}
	case models.ResourceChatRooms:
		return []Column{
			{Source: "id"}, {Source: "name"}, {Source: "creator"},
			{Source: "memberCount"}, {Source: "location"},
		}
	case models.ResourceReports:
		return []Column{
			{Source: "id"}, {Source: "type"}, {Source: "reason"},
			{Source: "status"}, {Source: "priority"},
		}
	default:
		return nil
	}
}

// Label turns a field source into a column header: "memberCount" becomes "Member count".
func (c Column) Label() string {
	var b strings.Builder
	for i, r := range c.Source {
		switch {
		case i == 0:
			b.WriteString(strings.ToUpper(string(r)))
		case r >= 'A' && r <= 'Z':
			b.WriteByte(' ')
			b.WriteString(strings.ToLower(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ResourceList renders the list view of one resource: heading, total and datagrid.
func ResourceList(r models.Resource, records []models.Record, total int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="list" data-resource="` + templ.EscapeString(r.String()) + `">`)
		b.WriteString(`<h4>` + templ.EscapeString(r.Label()) + `</h4>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := Datagrid(ColumnsFor(r), records).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<p class="total">`+templ.EscapeString(formatTotal(total))+`</p></section>`)
		return err
	})
}

// Datagrid renders records as a table in the given order, one column per field.
func Datagrid(columns []Column, records []models.Record) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<table class="datagrid"><thead><tr>`)
		for _, col := range columns {
			b.WriteString(`<th>` + templ.EscapeString(col.Label()) + `</th>`)
		}
		b.WriteString(`</tr></thead><tbody>`)
		for _, rec := range records {
			b.WriteString(`<tr>`)
			for _, col := range columns {
				b.WriteString(`<td>` + renderField(col, rec) + `</td>`)
			}
			b.WriteString(`</tr>`)
		}
		b.WriteString(`</tbody></table>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func renderField(col Column, rec models.Record) string {
	value := rec.String(col.Source)
	if col.Kind == EmailField && value != "" {
		href := string(templ.URL("mailto:" + value))
		return `<a href="` + templ.EscapeString(href) + `">` + templ.EscapeString(value) + `</a>`
	}
	return templ.EscapeString(value)
}

func formatTotal(total int) string {
	if total == 1 {
		return "1 record"
	}
	return message.NewPrinter(language.English).Sprintf("%d records", total)
}
