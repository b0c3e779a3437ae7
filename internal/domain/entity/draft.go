package entity

import "github.com/shopspring/decimal"

// Drafts: buffers de edición locales para alta/edición. Se siembran vacíos al
// crear y desde el registro seleccionado al editar; las referencias se manejan
// como ids sueltos (valor del selector) y el gateway las normaliza a {id}|null.

// LeadDraft campos editables de un Lead.
type LeadDraft struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Source    string `json:"source"`
	Status    string `json:"status"`
}

// ContactDraft campos editables de un Contact. LeadID/AccountID son los ids
// sueltos elegidos en los selectores.
type ContactDraft struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LeadID    string `json:"lead"`
	AccountID string `json:"account"`
}

// AccountDraft campos editables de una Account.
type AccountDraft struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Website  string `json:"website"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// OpportunityDraft campos editables de una Opportunity.
type OpportunityDraft struct {
	Name      string          `json:"name"`
	Stage     string          `json:"stage"`
	Amount    decimal.Decimal `json:"amount"`
	CloseDate string          `json:"closeDate"`
	AccountID string          `json:"account"`
	ContactID string          `json:"contact"`
}

// ActivityDraft campos editables de una Activity.
type ActivityDraft struct {
	Type        string `json:"type"`
	Subject     string `json:"subject"`
	Notes       string `json:"notes"`
	RelatedType string `json:"relatedType"`
	RelatedTo   string `json:"relatedTo"`
	DueDate     string `json:"dueDate"`
}

// NoteDraft campos editables de una Note.
type NoteDraft struct {
	Content    string `json:"content"`
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
}

// UserDraft campos editables de un User (password solo de escritura).
type UserDraft struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role,omitempty"`
}
