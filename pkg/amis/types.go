package amis

// Type tags recognised by the compiler. Tags are case sensitive; amis mixes
// lower-case renderer names with the capitalised control names of its type
// definitions and both spellings are kept verbatim.
const (
	TypeForm      = "form"
	TypeCombo     = "combo"
	TypeContainer = "container"
	TypeArray     = "array"
	TypeCheckbox  = "checkbox"

	// Layout wrappers. Their children replace them in the parent sequence.
	TypeFieldSet = "fieldSet"
	TypeGrid     = "grid"
)

// Payload keys read from a control.
const (
	KeyType       = "type"
	KeyName       = "name"
	KeyTitle      = "title"
	KeyRequired   = "required"
	KeyControls   = "controls"
	KeyColumns    = "columns"
	KeyItems      = "items"
	KeyBody       = "body"
	KeyTrueValue  = "trueValue"
	KeyFalseValue = "falseValue"
)

// WrapperChildrenKey reports the key holding a layout wrapper's children and
// whether tag names a layout wrapper at all.
func WrapperChildrenKey(tag string) (string, bool) {
	switch tag {
	case TypeFieldSet:
		return KeyControls, true
	case TypeGrid:
		return KeyColumns, true
	default:
		return "", false
	}
}
