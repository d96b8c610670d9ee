package image

import "strings"

// signatures are artist credits found in the built-in art.
// A token containing another one must come first.
var signatures = []string{
	"ejm98",
	"ejm",
	"hjw",
	"jgs",
	"mrf",
	"snd",
	"fsc",
	"bmw",
	"kOs",
	"jrei",
	"b'ger",
	"wtx",
	"Sher^",
}

// blankSignatures replaces every known signature in line with spaces of the
// same width.
func blankSignatures(line string) string {
	for _, sig := range signatures {
		if strings.Contains(line, sig) {
			line = strings.ReplaceAll(line, sig, strings.Repeat(" ", len(sig)))
		}
	}
	return line
}

// Credits returns the signatures found in art, in catalogue order.
func Credits(art string) []string {
	var found []string
	for _, sig := range signatures {
		if strings.Contains(art, sig) {
			found = append(found, sig)
			art = strings.ReplaceAll(art, sig, "")
		}
	}
	return found
}
