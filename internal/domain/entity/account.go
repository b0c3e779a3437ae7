package entity

// Industrias válidas para Account.
var AccountIndustries = []string{
	"TECHNOLOGY",
	"FINANCE",
	"HEALTHCARE",
	"EDUCATION",
	"MANUFACTURING",
	"RETAIL",
	"REAL_ESTATE",
	"TELECOMMUNICATIONS",
	"TRANSPORTATION",
	"OTHER",
}

// Account empresa cliente. Su borrado falla con conflicto referencial mientras
// existan Contacts que la referencien; esa regla la aplica el backend.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Website  string `json:"website"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Owner    *Ref   `json:"owner,omitempty"`
}
