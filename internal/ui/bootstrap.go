package ui

import "github.com/viktools/viktools/internal/toolbox"

// Bootstrap seeds the JWT and diagram inputs with example content. Fields
// that are missing or already hold text are left alone. It returns the ids
// it filled.
func Bootstrap(form *Form, seeds toolbox.Seeds) []string {
	var filled []string
	for _, s := range []struct{ id, value string }{
		{FieldJWTHeader, seeds.JWTHeader},
		{FieldJWTPayload, seeds.JWTPayload},
		{FieldPlantUMLInput, seeds.Diagram},
	} {
		if v, ok := form.Value(s.id); ok && v == "" {
			form.Set(s.id, s.value)
			filled = append(filled, s.id)
		}
	}
	return filled
}
