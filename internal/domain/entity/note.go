package entity

// Note anotación libre ligada de forma polimórfica a otro registro vía
// entityType/entityId.
type Note struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
	Owner      *Ref   `json:"owner,omitempty"`
}

// Related referencia polimórfica tipada.
func (n Note) Related() RelatedRef {
	return RelatedRef{Kind: RelatedKind(n.EntityType), ID: n.EntityID}
}
