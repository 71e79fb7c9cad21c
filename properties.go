package hwinfo

// Property is a single labeled inventory value. Value may span several lines.
type Property struct {
	Label string
	Value string
}

// Properties is an ordered list of inventory values. The order is the row
// order of the rendered table.
type Properties []Property

// Set replaces the value of label in place, or appends a new property when
// label is not present yet.
func (p *Properties) Set(label, value string) {
	for i := range *p {
		if (*p)[i].Label == label {
			(*p)[i].Value = value
			return
		}
	}

	*p = append(*p, Property{Label: label, Value: value})
}

// Get returns the value stored under label.
func (p Properties) Get(label string) (string, bool) {
	for _, prop := range p {
		if prop.Label == label {
			return prop.Value, true
		}
	}

	return "", false
}

// Rows returns the properties as label/value pairs.
func (p Properties) Rows() [][]string {
	rows := make([][]string, 0, len(p))
	for _, prop := range p {
		rows = append(rows, []string{prop.Label, prop.Value})
	}

	return rows
}

// Merge folds sets from left to right. A label keeps the position of its
// first occurrence and the value of its last one.
func Merge(sets ...Properties) Properties {
	var merged Properties
	for _, set := range sets {
		for _, prop := range set {
			merged.Set(prop.Label, prop.Value)
		}
	}

	return merged
}
