package scene

import "fmt"

// CharacterSummary is one saved character on the selection screen.
type CharacterSummary struct {
	DisplayName string `json:"display_name"`
	Level       int    `json:"level"`
	Species     string `json:"species"`
	Class       string `json:"class"`
}

// Label renders the selection-screen line for a saved character.
func (c CharacterSummary) Label() string {
	return fmt.Sprintf("%s (Lvl %d %s %s)", c.DisplayName, c.Level, c.Species, c.Class)
}

// Option is one species or class choice during character creation.
type Option struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Label renders the creation-screen line for an option.
func (o Option) Label() string {
	return fmt.Sprintf("%s - %s", o.Name, o.Description)
}
