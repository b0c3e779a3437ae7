package entity

import "github.com/shopspring/decimal"

// Etapas válidas para Opportunity.
const (
	StageProspecting = "PROSPECTING"
	StageNegotiation = "NEGOTIATION"
	StageClosedWon   = "CLOSED_WON"
	StageClosedLost  = "CLOSED_LOST"
)

// Opportunity negocio en curso asociado a una Account y opcionalmente a un
// Contact. Amount se maneja con decimal para no perder precisión monetaria.
type Opportunity struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Stage     string          `json:"stage"`
	Amount    decimal.Decimal `json:"amount"`
	CloseDate string          `json:"closeDate"`
	Account   *Account        `json:"account,omitempty"`
	Contact   *Contact        `json:"contact,omitempty"`
	Owner     *Ref            `json:"owner,omitempty"`
}
