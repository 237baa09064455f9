package compiler

import "strings"

type pathSegment struct {
	name string
	item bool
}

// fieldPath locates a control inside the output schema. Array elements are
// their own segment so a field literally named "items" stays a field.
type fieldPath []pathSegment

func (p fieldPath) field(name string) fieldPath {
	return p.with(pathSegment{name: name})
}

func (p fieldPath) item() fieldPath {
	return p.with(pathSegment{item: true})
}

func (p fieldPath) with(seg pathSegment) fieldPath {
	out := make(fieldPath, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// String renders the path for people: "contacts[].email".
func (p fieldPath) String() string {
	var b strings.Builder
	for idx, seg := range p {
		switch {
		case seg.item:
			b.WriteString("[]")
		case idx > 0:
			b.WriteByte('.')
			b.WriteString(seg.name)
		default:
			b.WriteString(seg.name)
		}
	}
	return b.String()
}

// Pointer renders the RFC 6901 pointer of the fragment inside the output
// schema: "/properties/contacts/items/properties/email".
func (p fieldPath) Pointer() string {
	var b strings.Builder
	for _, seg := range p {
		if seg.item {
			b.WriteString("/items")
			continue
		}
		b.WriteString("/properties/")
		b.WriteString(pointerEscaper.Replace(seg.name))
	}
	return b.String()
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")
