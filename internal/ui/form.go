package ui

// Field ids shared by every view of the toolbox.
const (
	FieldCryptoInput     = "crypto-input"
	FieldCryptoAlgorithm = "crypto-algorithm"
	FieldCryptoKey       = "crypto-key"
	FieldCryptoOutput    = "crypto-output"

	FieldEncodingInput  = "encoding-input"
	FieldEncodingType   = "encoding-type"
	FieldEncodingOutput = "encoding-output"

	FieldHashInput     = "hash-input"
	FieldHashAlgorithm = "hash-algorithm"
	FieldHashOutput    = "hash-output"

	FieldJWTHeader       = "jwt-header"
	FieldJWTPayload      = "jwt-payload"
	FieldJWTSecret       = "jwt-secret"
	FieldJWTToken        = "jwt-token"
	FieldJWTTokenVerify  = "jwt-token-verify"
	FieldJWTSecretVerify = "jwt-secret-verify"
	FieldJWTOutput       = "jwt-output"

	FieldPlantUMLInput   = "plantuml-input"
	FieldPlantUMLFormat  = "plantuml-format"
	FieldPlantUMLPreview = "plantuml-preview"
)

// AllFields lists every field id in page order.
var AllFields = []string{
	FieldCryptoInput, FieldCryptoAlgorithm, FieldCryptoKey, FieldCryptoOutput,
	FieldEncodingInput, FieldEncodingType, FieldEncodingOutput,
	FieldHashInput, FieldHashAlgorithm, FieldHashOutput,
	FieldJWTHeader, FieldJWTPayload, FieldJWTSecret,
	FieldJWTToken, FieldJWTTokenVerify, FieldJWTSecretVerify, FieldJWTOutput,
	FieldPlantUMLInput, FieldPlantUMLFormat, FieldPlantUMLPreview,
}

// Form holds the text values of a fixed set of fields.
type Form struct {
	values map[string]string
	order  []string
}

// NewForm creates a form with the given empty fields.
func NewForm(ids ...string) *Form {
	f := &Form{values: make(map[string]string, len(ids))}
	for _, id := range ids {
		if _, ok := f.values[id]; ok {
			continue
		}
		f.values[id] = ""
		f.order = append(f.order, id)
	}
	return f
}

// Has reports whether the field exists.
func (f *Form) Has(id string) bool {
	_, ok := f.values[id]
	return ok
}

// Value returns the field value and whether the field exists.
func (f *Form) Value(id string) (string, bool) {
	v, ok := f.values[id]
	return v, ok
}

// Get returns the field value, or "" for unknown fields.
func (f *Form) Get(id string) string { return f.values[id] }

// Set stores v into an existing field. Unknown fields are ignored.
func (f *Form) Set(id, v string) bool {
	if _, ok := f.values[id]; !ok {
		return false
	}
	f.values[id] = v
	return true
}

// Fields returns the field ids in creation order.
func (f *Form) Fields() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}
