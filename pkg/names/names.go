// Package names validates and generates player character names.
package names

import (
	"math/rand"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxLength caps character names, matching the server's limit.
const MaxLength = 20

var (
	allowedRunes = regexp.MustCompile(`^[a-zA-Z '-]*$`)
	numericOnly  = regexp.MustCompile(`^\d+$`)
)

// ValidationError describes why a proposed name was rejected.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrEmpty   = ValidationError("please enter a name for your character")
	ErrNumeric = ValidationError("name cannot be purely numeric")
	ErrRunes   = ValidationError("name may only contain letters, spaces, apostrophes and hyphens")
	ErrTooLong = ValidationError("name is too long")
)

// Validate checks a trimmed name against the creation rules. Empty and
// purely numeric names are rejected without contacting the server.
func Validate(name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return ErrEmpty
	case numericOnly.MatchString(name):
		return ErrNumeric
	case len(name) > MaxLength:
		return ErrTooLong
	case !allowedRunes.MatchString(name):
		return ErrRunes
	}
	return nil
}

// FilterInput strips disallowed runes as the user types, mirroring the
// real-time input filter of the name form.
func FilterInput(s string) string {
	var b strings.Builder
	for _, r := range s {
		if allowedRunes.MatchString(string(r)) {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > MaxLength {
		out = out[:MaxLength]
	}
	return out
}

var nameStems = []string{
	"bran", "mira", "tor", "elya", "dain", "sera",
	"kor", "lina", "fen", "arda", "rook", "nessa",
}

var nameSuffixes = []string{
	"wyn", "dor", "iel", "mar", "ith", "an", "is", "ric",
}

// Genders offered by the creation form.
var Genders = []string{"Male", "Female"}

// Random composes a generated name for the auto-create shortcut.
func Random(rng *rand.Rand) string {
	titler := cases.Title(language.English)
	stem := nameStems[rng.Intn(len(nameStems))]
	suffix := nameSuffixes[rng.Intn(len(nameSuffixes))]
	return titler.String(stem + suffix)
}

// RandomGender picks a gender for the auto-create shortcut.
func RandomGender(rng *rand.Rand) string {
	return Genders[rng.Intn(len(Genders))]
}
