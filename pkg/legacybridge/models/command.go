package models

// CommandRecord is one invokable legacy command.
type CommandRecord struct {
	// Key is the legacy command label.
	Key string `json:"key"`
	// MenuPath is the menu location, nil for menu-less (headless or macro-only) commands.
	MenuPath *MenuPath `json:"menu_path,omitempty"`
	// ClassName is the implementing class identifier from the descriptor.
	ClassName string `json:"class_name"`
	// Argument is the quoted descriptor argument, empty if none.
	Argument string `json:"argument,omitempty"`
}

// HasMenu reports whether the command appears in the menu structure.
func (r CommandRecord) HasMenu() bool {
	return r.MenuPath != nil
}
