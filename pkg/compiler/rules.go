package compiler

import (
	"github.com/goliatone/go-amisschema/pkg/amis"
	"github.com/goliatone/go-amisschema/pkg/jsonschema"
)

type ruleKind int

const (
	ruleUnknown ruleKind = iota
	ruleObject
	ruleContainer
	ruleArray
	ruleCheckbox
	rulePrimitive
	// rulePending marks tags the host format defines that have no
	// translation yet. They fail like unknown tags.
	rulePending
)

func (k ruleKind) String() string {
	switch k {
	case ruleObject:
		return "object"
	case ruleContainer:
		return "container"
	case ruleArray:
		return "array"
	case ruleCheckbox:
		return "checkbox"
	case rulePrimitive:
		return "primitive"
	case rulePending:
		return "pending"
	default:
		return "unknown"
	}
}

type rule struct {
	kind      ruleKind
	primitive jsonschema.Type
}

// stringTags hold rich widgets whose submitted value is a formatted string.
var stringTags = []string{
	"checkboxes",
	"city",
	"color",
	"chained-select",
	"date",
	"date-range",
	"editor",
	"Text",
	"Location",
}

var pendingTags = []string{
	"Grid",
	"Group",
	"HBox",
	"Hidden",
	"IconPickerIcons",
	"IconPicker",
	"Image",
	"index",
	"InputGroup",
	"Item",
	"List",
	"Matrix",
	"NestedSelect",
	"Number",
	"Options",
	"Panel",
	"Picker",
	"Radios",
	"Range",
	"Rating",
	"Repeat",
	"RichText",
	"Select",
	"Service",
	"Static",
	"SubForm",
	"Switch",
	"Table",
	"TabsTransfer",
	"Tabs",
	"Tag",
	"Textarea",
	"Transfer",
	"TreeSelect",
	"Tree",
}

func defaultRules() map[string]rule {
	table := make(map[string]rule, len(stringTags)+len(pendingTags)+4)
	for _, tag := range pendingTags {
		table[tag] = rule{kind: rulePending}
	}
	for _, tag := range stringTags {
		table[tag] = rule{kind: rulePrimitive, primitive: jsonschema.TypeString}
	}
	table[amis.TypeCombo] = rule{kind: ruleObject}
	table[amis.TypeContainer] = rule{kind: ruleContainer}
	table[amis.TypeArray] = rule{kind: ruleArray}
	table[amis.TypeCheckbox] = rule{kind: ruleCheckbox}
	return table
}

// PendingTypes lists the tags recognised by the host format that still fail
// with ErrUnhandledFieldType.
func PendingTypes() []string {
	return append([]string(nil), pendingTags...)
}

// StringTypes lists the built-in tags mapped to the string primitive.
func StringTypes() []string {
	return append([]string(nil), stringTags...)
}
