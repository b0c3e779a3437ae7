package screen

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/gateway"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// Deps gateways y colaboradores que comparten las seis pantallas. Los lookups
// cruzados son alias del List de otro gateway, nunca endpoints propios.
type Deps struct {
	Leads         gateway.CRUD[entity.Lead, entity.LeadDraft]
	Contacts      gateway.CRUD[entity.Contact, entity.ContactDraft]
	Accounts      gateway.CRUD[entity.Account, entity.AccountDraft]
	Opportunities gateway.CRUD[entity.Opportunity, entity.OpportunityDraft]
	Activities    gateway.CRUD[entity.Activity, entity.ActivityDraft]
	Notes         gateway.CRUD[entity.Note, entity.NoteDraft]
	Exporters     map[string]TableExporter
	Log           *logger.Logger
}

// dash valor de celda para referencias incrustadas ausentes.
const dash = "-"

// NewLeadScreen pantalla de Leads. Sin relaciones; busca por nombre, email y
// empresa.
func NewLeadScreen(d Deps) *UseCase[entity.Lead, entity.LeadDraft] {
	return New(Config[entity.Lead, entity.LeadDraft]{
		Name:    "leads",
		Title:   "Leads Report",
		Gateway: d.Leads,
		Search: func(l entity.Lead, _ *Resolver) []string {
			return []string{l.FirstName, l.LastName, l.Email, l.Company}
		},
		Columns: []Column[entity.Lead]{
			{Header: "First Name", Value: func(l entity.Lead, _ *Resolver) string { return l.FirstName }},
			{Header: "Last Name", Value: func(l entity.Lead, _ *Resolver) string { return l.LastName }},
			{Header: "Email", Value: func(l entity.Lead, _ *Resolver) string { return l.Email }},
			{Header: "Phone", Value: func(l entity.Lead, _ *Resolver) string { return l.Phone }},
			{Header: "Company", Value: func(l entity.Lead, _ *Resolver) string { return l.Company }},
			{Header: "Source", Value: func(l entity.Lead, _ *Resolver) string { return l.Source }},
			{Header: "Status", Value: func(l entity.Lead, _ *Resolver) string { return l.Status }},
		},
	}, d.Exporters, d.Log)
}

// NewContactScreen pantalla de Contacts. Referencia Lead y Account; la
// búsqueda incluye los nombres incrustados por el backend.
func NewContactScreen(d Deps) *UseCase[entity.Contact, entity.ContactDraft] {
	return New(Config[entity.Contact, entity.ContactDraft]{
		Name:    "contacts",
		Title:   "Contacts Report",
		Gateway: d.Contacts,
		Search: func(c entity.Contact, _ *Resolver) []string {
			fields := []string{c.FirstName, c.LastName, c.Email, c.Phone}
			if c.Lead != nil {
				fields = append(fields, c.Lead.FirstName)
			}
			if c.Account != nil {
				fields = append(fields, c.Account.Name)
			}
			return fields
		},
		Columns: []Column[entity.Contact]{
			{Header: "First Name", Value: func(c entity.Contact, _ *Resolver) string { return c.FirstName }},
			{Header: "Last Name", Value: func(c entity.Contact, _ *Resolver) string { return c.LastName }},
			{Header: "Email", Value: func(c entity.Contact, _ *Resolver) string { return c.Email }},
			{Header: "Phone", Value: func(c entity.Contact, _ *Resolver) string { return c.Phone }},
			{Header: "Lead", Value: func(c entity.Contact, _ *Resolver) string {
				if c.Lead == nil {
					return dash
				}
				return c.Lead.FullName()
			}},
			{Header: "Account", Value: func(c entity.Contact, _ *Resolver) string {
				if c.Account == nil {
					return dash
				}
				return c.Account.Name
			}},
		},
		Lookups: func(ctx context.Context, token string) (*Resolver, error) {
			res := NewResolver()
			leads, err := d.Leads.List(ctx, token)
			if err != nil {
				return nil, err
			}
			res.SetLeads(leads)
			accounts, err := d.Accounts.List(ctx, token)
			if err != nil {
				return nil, err
			}
			res.SetAccounts(accounts)
			return res, nil
		},
	}, d.Exporters, d.Log)
}

// NewAccountScreen pantalla de Accounts.
func NewAccountScreen(d Deps) *UseCase[entity.Account, entity.AccountDraft] {
	return New(Config[entity.Account, entity.AccountDraft]{
		Name:    "accounts",
		Title:   "Accounts Report",
		Gateway: d.Accounts,
		Search: func(a entity.Account, _ *Resolver) []string {
			return []string{a.Name, a.Industry, a.Website, a.Phone, a.Address}
		},
		Columns: []Column[entity.Account]{
			{Header: "Name", Value: func(a entity.Account, _ *Resolver) string { return a.Name }},
			{Header: "Industry", Value: func(a entity.Account, _ *Resolver) string { return a.Industry }},
			{Header: "Website", Value: func(a entity.Account, _ *Resolver) string { return a.Website }},
			{Header: "Phone", Value: func(a entity.Account, _ *Resolver) string { return a.Phone }},
			{Header: "Address", Value: func(a entity.Account, _ *Resolver) string { return a.Address }},
		},
	}, d.Exporters, d.Log)
}

// NewOpportunityScreen pantalla de Opportunities. Referencia Account y Contact.
func NewOpportunityScreen(d Deps) *UseCase[entity.Opportunity, entity.OpportunityDraft] {
	return New(Config[entity.Opportunity, entity.OpportunityDraft]{
		Name:    "opportunities",
		Title:   "Opportunities Report",
		Gateway: d.Opportunities,
		Search: func(o entity.Opportunity, _ *Resolver) []string {
			return []string{o.Name, o.Stage}
		},
		Columns: []Column[entity.Opportunity]{
			{Header: "Name", Value: func(o entity.Opportunity, _ *Resolver) string { return o.Name }},
			{Header: "Stage", Value: func(o entity.Opportunity, _ *Resolver) string { return o.Stage }},
			{Header: "Amount", Value: func(o entity.Opportunity, _ *Resolver) string { return o.Amount.String() }},
			{Header: "Close Date", Value: func(o entity.Opportunity, _ *Resolver) string { return o.CloseDate }},
			{Header: "Account", Value: func(o entity.Opportunity, _ *Resolver) string {
				if o.Account == nil {
					return dash
				}
				return o.Account.Name
			}},
			{Header: "Contact", Value: func(o entity.Opportunity, _ *Resolver) string {
				if o.Contact == nil {
					return dash
				}
				return o.Contact.FullName()
			}},
		},
		Lookups: func(ctx context.Context, token string) (*Resolver, error) {
			res := NewResolver()
			accounts, err := d.Accounts.List(ctx, token)
			if err != nil {
				return nil, err
			}
			res.SetAccounts(accounts)
			contacts, err := d.Contacts.List(ctx, token)
			if err != nil {
				return nil, err
			}
			res.SetContacts(contacts)
			return res, nil
		},
	}, d.Exporters, d.Log)
}

// NewActivityScreen pantalla de Activities. Relación polimórfica; la búsqueda
// incluye el nombre resuelto del registro relacionado.
func NewActivityScreen(d Deps) *UseCase[entity.Activity, entity.ActivityDraft] {
	return New(Config[entity.Activity, entity.ActivityDraft]{
		Name:    "activities",
		Title:   "Activities Report",
		Gateway: d.Activities,
		Search: func(a entity.Activity, res *Resolver) []string {
			return []string{a.Subject, a.Type, res.DisplayName(a.Related())}
		},
		Columns: []Column[entity.Activity]{
			{Header: "Type", Value: func(a entity.Activity, _ *Resolver) string { return a.Type }},
			{Header: "Subject", Value: func(a entity.Activity, _ *Resolver) string { return a.Subject }},
			{Header: "Due Date", Value: func(a entity.Activity, _ *Resolver) string { return a.DueDate }},
			{Header: "Related To", Value: func(a entity.Activity, res *Resolver) string { return res.Badge(a.Related()) }},
		},
		Lookups: allLookups(d),
	}, d.Exporters, d.Log)
}

// NewNoteScreen pantalla de Notes. Relación polimórfica vía entityType/entityId.
func NewNoteScreen(d Deps) *UseCase[entity.Note, entity.NoteDraft] {
	return New(Config[entity.Note, entity.NoteDraft]{
		Name:    "notes",
		Title:   "Notes Report",
		Gateway: d.Notes,
		Search: func(n entity.Note, res *Resolver) []string {
			return []string{n.Content, n.EntityType, res.DisplayName(n.Related())}
		},
		Columns: []Column[entity.Note]{
			{Header: "Content", Value: func(n entity.Note, _ *Resolver) string { return n.Content }},
			{Header: "Related To", Value: func(n entity.Note, res *Resolver) string { return res.Badge(n.Related()) }},
		},
		Lookups: allLookups(d),
	}, d.Exporters, d.Log)
}

// allLookups carga las cuatro colecciones referenciables (Activities y Notes
// pueden apuntar a cualquiera de ellas).
func allLookups(d Deps) func(ctx context.Context, token string) (*Resolver, error) {
	return func(ctx context.Context, token string) (*Resolver, error) {
		res := NewResolver()
		leads, err := d.Leads.List(ctx, token)
		if err != nil {
			return nil, err
		}
		res.SetLeads(leads)
		contacts, err := d.Contacts.List(ctx, token)
		if err != nil {
			return nil, err
		}
		res.SetContacts(contacts)
		accounts, err := d.Accounts.List(ctx, token)
		if err != nil {
			return nil, err
		}
		res.SetAccounts(accounts)
		opportunities, err := d.Opportunities.List(ctx, token)
		if err != nil {
			return nil, err
		}
		res.SetOpportunities(opportunities)
		return res, nil
	}
}
