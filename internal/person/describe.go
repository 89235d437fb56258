package person

import (
	"fmt"
	"io"

	"bindprop/internal/prop"
)

// Field is one line of a Describe listing.
type Field struct {
	Label    string
	Strategy string
	Text     string
}

// Fields lists every readable accessor of p with its rendered value.
// Write-only accessors are reported by strategy with no value.
func (p *Person) Fields() []Field {
	city := "<unset>"
	if p.City.Initialized() {
		city = prop.Format[string](&p.City)
	}
	route := "<none>"
	if p.Route.Valid() {
		route = fmt.Sprintf("%d points, %.2f long", len(p.Route.Deref()), p.RouteLength())
	}
	mentor := "<none>"
	p.Mentor().Then(func(m *Person) { mentor = prop.Format[string](&m.Name) })

	return []Field{
		{"id", "value reader", prop.Format[int](&p.ID)},
		{"name", "reference", prop.Format[string](&p.Name)},
		{"nickname", "value", prop.Format[string](&p.Nickname)},
		{"email", "value writer", p.EmailAddress()},
		{"motto", "reference reader", prop.Format[string](&p.Motto)},
		{"password", "reference writer", ""},
		{"heading", "value", prop.Format[int](&p.Heading)},
		{"age", "stored", prop.Format[int](&p.Age)},
		{"route", "shared", route},
		{"city", "pointer alias", city},
		{"mentor", "optional", mentor},
	}
}

// Describe writes one "label: text" line per field.
func (p *Person) Describe(w io.Writer) error {
	for _, f := range p.Fields() {
		if _, err := fmt.Fprintf(w, "%-9s %s\n", f.Label+":", f.Text); err != nil {
			return err
		}
	}
	return nil
}
