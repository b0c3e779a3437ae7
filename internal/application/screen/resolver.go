package screen

import (
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// Option entrada de un selector de relación: id + etiqueta para mostrar.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Resolver resuelve referencias de relación a nombres para mostrar usando las
// listas de lookup ya cargadas. Si la referencia no aparece en las listas, el
// nombre resuelto es la cadena vacía; el backend sigue siendo la autoridad.
type Resolver struct {
	leads         map[string]entity.Lead
	contacts      map[string]entity.Contact
	accounts      map[string]entity.Account
	opportunities map[string]entity.Opportunity

	options map[string][]Option // por colección, en el orden del backend
}

// NewResolver construye un resolver vacío.
func NewResolver() *Resolver {
	return &Resolver{
		leads:         map[string]entity.Lead{},
		contacts:      map[string]entity.Contact{},
		accounts:      map[string]entity.Account{},
		opportunities: map[string]entity.Opportunity{},
		options:       map[string][]Option{},
	}
}

// SetLeads registra la lista de leads para resolución y selectores.
func (r *Resolver) SetLeads(list []entity.Lead) {
	opts := make([]Option, 0, len(list))
	for _, l := range list {
		r.leads[l.ID] = l
		opts = append(opts, Option{ID: l.ID, Label: l.FullName()})
	}
	r.options["leads"] = opts
}

// SetContacts registra la lista de contacts.
func (r *Resolver) SetContacts(list []entity.Contact) {
	opts := make([]Option, 0, len(list))
	for _, c := range list {
		r.contacts[c.ID] = c
		opts = append(opts, Option{ID: c.ID, Label: c.FullName()})
	}
	r.options["contacts"] = opts
}

// SetAccounts registra la lista de accounts.
func (r *Resolver) SetAccounts(list []entity.Account) {
	opts := make([]Option, 0, len(list))
	for _, a := range list {
		r.accounts[a.ID] = a
		opts = append(opts, Option{ID: a.ID, Label: a.Name})
	}
	r.options["accounts"] = opts
}

// SetOpportunities registra la lista de opportunities.
func (r *Resolver) SetOpportunities(list []entity.Opportunity) {
	opts := make([]Option, 0, len(list))
	for _, o := range list {
		r.opportunities[o.ID] = o
		opts = append(opts, Option{ID: o.ID, Label: o.Name})
	}
	r.options["opportunities"] = opts
}

// Options devuelve las opciones de selector por colección.
func (r *Resolver) Options() map[string][]Option {
	return r.options
}

// DisplayName nombre para mostrar de una referencia polimórfica. El switch es
// exhaustivo sobre RelatedKind; referencia vacía o no resuelta → "".
func (r *Resolver) DisplayName(ref entity.RelatedRef) string {
	if ref.IsZero() {
		return ""
	}
	switch ref.Kind {
	case entity.RelatedLead:
		return r.leads[ref.ID].FullName()
	case entity.RelatedContact:
		return r.contacts[ref.ID].FullName()
	case entity.RelatedAccount:
		return r.accounts[ref.ID].Name
	case entity.RelatedOpportunity:
		return r.opportunities[ref.ID].Name
	case entity.RelatedNone:
		return ""
	}
	return ""
}

// Badge etiqueta "TIPO: Nombre" que muestran las tablas de Activities y Notes,
// ej. "ACCOUNT: Acme". Referencia vacía → "".
func (r *Resolver) Badge(ref entity.RelatedRef) string {
	if ref.IsZero() {
		return ""
	}
	return string(ref.Kind) + ": " + r.DisplayName(ref)
}
