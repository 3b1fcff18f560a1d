package types

// Module describes a calculator module shown in the main menu
type Module struct {
	Key         string `json:"key"`  // menu selection, e.g. "1"
	Name        string `json:"name"` // short title, e.g. "Arithmetic"
	Description string `json:"description"`
}

// Label renders the menu line text, e.g. "Arithmetic  (A+B, A-B, ...)"
func (m Module) Label() string {
	if m.Description == "" {
		return m.Name
	}
	return m.Name + "  (" + m.Description + ")"
}
