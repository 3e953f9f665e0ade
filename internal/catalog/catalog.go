// Package catalog holds the static list of launchable clinic modules and the
// filtering and paging used by the launcher grid.
package catalog

import "strings"

// Category groups related modules.
type Category string

const (
	CatClinical  Category = "clinical"
	CatOperation Category = "operations"
	CatFinance   Category = "finance"
	CatSystem    Category = "system"
)

// Descriptor is a read-only catalog entry.
type Descriptor struct {
	ID       string
	Label    string
	Icon     string
	Category Category
}

var modules = []Descriptor{
	{ID: "prontuario", Label: "Prontuário", Icon: "⚕", Category: CatClinical},
	{ID: "agenda", Label: "Agenda", Icon: "▦", Category: CatOperation},
	{ID: "estoque", Label: "Estoque", Icon: "▤", Category: CatOperation},
	{ID: "faturamento", Label: "Faturamento", Icon: "$", Category: CatFinance},
	{ID: "pacientes", Label: "Pacientes", Icon: "♙", Category: CatClinical},
	{ID: "admin", Label: "Administração", Icon: "⚙", Category: CatSystem},
}

// All returns a copy of the full catalog in display order.
func All() []Descriptor {
	out := make([]Descriptor, len(modules))
	copy(out, modules)
	return out
}

// Lookup returns the descriptor with the given id.
func Lookup(id string) (Descriptor, bool) {
	for _, d := range modules {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Filter returns the entries of items whose label contains query, ignoring
// case. Order is preserved. An empty query matches everything.
func Filter(items []Descriptor, query string) []Descriptor {
	q := strings.ToLower(query)
	out := make([]Descriptor, 0, len(items))
	for _, d := range items {
		if strings.Contains(strings.ToLower(d.Label), q) {
			out = append(out, d)
		}
	}
	return out
}
