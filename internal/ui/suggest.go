package ui

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Verbs the dispatcher understands regardless of the current scene.
var baseVerbs = []string{
	"go", "take", "talk", "equip", "unequip", "inventory", "look", "save",
	"enter city",
}

// suggestCommand returns a "Did you mean" hint when the typed command is
// a near miss of a known verb or currently available action. The command
// is dispatched either way; the hint is informational only.
func (m *Model) suggestCommand(input string) string {
	verb := strings.ToLower(strings.Fields(input)[0])

	candidates := make([]string, 0, len(baseVerbs)+8)
	candidates = append(candidates, baseVerbs...)
	if p := m.scenePayload; p != nil {
		for _, a := range p.Actions {
			candidates = append(candidates, strings.ToLower(a))
		}
		for _, e := range p.Exits {
			candidates = append(candidates, "go "+strings.ToLower(e))
		}
	}

	best := ""
	bestDist := -1
	for _, c := range candidates {
		if c == verb || c == strings.ToLower(input) {
			return "" // exact match, nothing to suggest
		}
		d := levenshtein.ComputeDistance(verb, c)
		if bestDist == -1 || d < bestDist {
			best, bestDist = c, d
		}
	}

	// Tolerate more slippage on longer words.
	limit := 1
	if len(verb) >= 5 {
		limit = 2
	}
	if best == "" || bestDist > limit {
		return ""
	}
	return fmt.Sprintf("Did you mean %q?", best)
}
