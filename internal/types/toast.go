package types

// ToastMessage is the text and styling of a toast notification
type ToastMessage struct {
	Text    string
	Variant Variant
}

// Variant classifies a toast as success or failure
type Variant int

const (
	VariantSuccess Variant = iota
	VariantFailure
)

// String returns the string representation of the variant
func (v Variant) String() string {
	switch v {
	case VariantFailure:
		return "failure"
	default:
		return "success"
	}
}
