package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// PaletteColor is one named color of a palette under validation.
type PaletteColor struct {
	Name  string
	Value string
}

// ValidatePaletteHex reports every palette entry that is not a #RRGGBB color.
// An empty value is accepted and means "use the terminal default".
func ValidatePaletteHex(prefix string, colors ...PaletteColor) []string {
	var errs []string
	for _, c := range colors {
		if c.Value == "" {
			continue
		}
		if !IsHexColor(c.Value) {
			errs = append(errs, prefix+"."+c.Name+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}
