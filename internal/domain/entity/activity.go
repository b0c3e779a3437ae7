package entity

// Tipos válidos para Activity.
const (
	ActivityCall    = "CALL"
	ActivityEmail   = "EMAIL"
	ActivityMeeting = "MEETING"
	ActivityTask    = "TASK"
)

// Activity tarea o interacción (llamada, correo, reunión) relacionada de forma
// polimórfica con otro registro vía relatedType/relatedTo.
type Activity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Subject     string `json:"subject"`
	Notes       string `json:"notes"`
	RelatedType string `json:"relatedType"`
	RelatedTo   string `json:"relatedTo"`
	DueDate     string `json:"dueDate"`
	Owner       *Ref   `json:"owner,omitempty"`
}

// Related referencia polimórfica tipada.
func (a Activity) Related() RelatedRef {
	return RelatedRef{Kind: RelatedKind(a.RelatedType), ID: a.RelatedTo}
}
