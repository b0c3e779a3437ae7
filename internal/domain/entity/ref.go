package entity

// Ref referencia por identificador hacia otro registro, tal como la espera el
// backend en escrituras: {"id": "..."} o null. En lecturas el backend devuelve
// el objeto relacionado expandido, no un Ref.
type Ref struct {
	ID string `json:"id"`
}

// NewRef normaliza el valor crudo de un selector (un id suelto) al objeto de
// referencia del backend. Cadena vacía → sin referencia (null en el JSON).
func NewRef(id string) *Ref {
	if id == "" {
		return nil
	}
	return &Ref{ID: id}
}

// RelatedKind discrimina a qué colección apunta una referencia polimórfica
// (Activities y Notes relacionan contra Lead, Contact, Account u Opportunity).
// Variante etiquetada en lugar del switch sobre strings del backend; el valor
// cero (RelatedNone) representa "sin relación".
type RelatedKind string

const (
	RelatedNone        RelatedKind = ""
	RelatedLead        RelatedKind = "LEAD"
	RelatedContact     RelatedKind = "CONTACT"
	RelatedAccount     RelatedKind = "ACCOUNT"
	RelatedOpportunity RelatedKind = "OPPORTUNITY"
)

// Valid indica si el discriminador es uno de los valores conocidos.
func (k RelatedKind) Valid() bool {
	switch k {
	case RelatedNone, RelatedLead, RelatedContact, RelatedAccount, RelatedOpportunity:
		return true
	}
	return false
}

// RelatedRef referencia polimórfica: tipo + id. Kind == RelatedNone o ID vacío
// significa que no hay relación.
type RelatedRef struct {
	Kind RelatedKind
	ID   string
}

// IsZero indica si la referencia está vacía.
func (r RelatedRef) IsZero() bool {
	return r.Kind == RelatedNone || r.ID == ""
}
