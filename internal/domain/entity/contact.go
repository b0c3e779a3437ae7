package entity

// Contact persona de contacto; puede referenciar el Lead que la originó y la
// Account a la que pertenece. En lecturas el backend expande ambos objetos.
type Contact struct {
	ID        string   `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Lead      *Lead    `json:"lead,omitempty"`
	Account   *Account `json:"account,omitempty"`
	Owner     *Ref     `json:"owner,omitempty"`
}

// FullName nombre para mostrar en selectores y badges.
func (c Contact) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
