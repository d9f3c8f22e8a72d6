package entity

// ExtensionDescriptor is an installed extension as reported by the
// extension catalog. Discovery happens outside the sidebar.
type ExtensionDescriptor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Command string `json:"command"`
}

// ButtonID returns the id used for the extension's sidebar button.
func (d ExtensionDescriptor) ButtonID() ButtonID {
	return ButtonID("ext:" + d.ID)
}
