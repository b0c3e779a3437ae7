package crmapi

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// Payloads de escritura por entidad. Replican el contrato del backend: las
// referencias elegidas en selectores (ids sueltos) se normalizan a {id}|null
// y todas las entidades llevan owner estampado con el usuario de la sesión.

type leadWire struct {
	entity.LeadDraft
	Owner *entity.Ref `json:"owner"`
}

type contactWire struct {
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Lead      *entity.Ref `json:"lead"`
	Account   *entity.Ref `json:"account"`
	Owner     *entity.Ref `json:"owner"`
}

type accountWire struct {
	entity.AccountDraft
	Owner *entity.Ref `json:"owner"`
}

type opportunityWire struct {
	Name      string          `json:"name"`
	Stage     string          `json:"stage"`
	Amount    decimal.Decimal `json:"amount"`
	CloseDate string          `json:"closeDate"`
	Account   *entity.Ref     `json:"account"`
	Contact   *entity.Ref     `json:"contact"`
	Owner     *entity.Ref     `json:"owner"`
}

type activityWire struct {
	entity.ActivityDraft
	Owner *entity.Ref `json:"owner"`
}

type noteWire struct {
	entity.NoteDraft
	Owner *entity.Ref `json:"owner"`
}

// NewLeadGateway gateway de /leads.
func NewLeadGateway(c *Client) *Resource[entity.Lead, entity.LeadDraft] {
	return NewResource[entity.Lead](c, "/leads", func(d entity.LeadDraft, ownerID string) any {
		return leadWire{LeadDraft: d, Owner: entity.NewRef(ownerID)}
	})
}

// NewContactGateway gateway de /contacts.
func NewContactGateway(c *Client) *Resource[entity.Contact, entity.ContactDraft] {
	return NewResource[entity.Contact](c, "/contacts", func(d entity.ContactDraft, ownerID string) any {
		return contactWire{
			FirstName: d.FirstName,
			LastName:  d.LastName,
			Email:     d.Email,
			Phone:     d.Phone,
			Lead:      entity.NewRef(d.LeadID),
			Account:   entity.NewRef(d.AccountID),
			Owner:     entity.NewRef(ownerID),
		}
	})
}

// NewAccountGateway gateway de /accounts.
func NewAccountGateway(c *Client) *Resource[entity.Account, entity.AccountDraft] {
	return NewResource[entity.Account](c, "/accounts", func(d entity.AccountDraft, ownerID string) any {
		return accountWire{AccountDraft: d, Owner: entity.NewRef(ownerID)}
	})
}

// NewOpportunityGateway gateway de /opportunities.
func NewOpportunityGateway(c *Client) *Resource[entity.Opportunity, entity.OpportunityDraft] {
	return NewResource[entity.Opportunity](c, "/opportunities", func(d entity.OpportunityDraft, ownerID string) any {
		return opportunityWire{
			Name:      d.Name,
			Stage:     d.Stage,
			Amount:    d.Amount,
			CloseDate: d.CloseDate,
			Account:   entity.NewRef(d.AccountID),
			Contact:   entity.NewRef(d.ContactID),
			Owner:     entity.NewRef(ownerID),
		}
	})
}

// NewActivityGateway gateway de /activities.
func NewActivityGateway(c *Client) *Resource[entity.Activity, entity.ActivityDraft] {
	return NewResource[entity.Activity](c, "/activities", func(d entity.ActivityDraft, ownerID string) any {
		return activityWire{ActivityDraft: d, Owner: entity.NewRef(ownerID)}
	})
}

// NewNoteGateway gateway de /notes.
func NewNoteGateway(c *Client) *Resource[entity.Note, entity.NoteDraft] {
	return NewResource[entity.Note](c, "/notes", func(d entity.NoteDraft, ownerID string) any {
		return noteWire{NoteDraft: d, Owner: entity.NewRef(ownerID)}
	})
}
