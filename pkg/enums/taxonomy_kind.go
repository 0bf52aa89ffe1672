package enums

import "fmt"

// TaxonomyKind selects between the two configurable type taxonomies.
type TaxonomyKind string

const (
	TaxonomyKindCarType  TaxonomyKind = "car_type"
	TaxonomyKindWashType TaxonomyKind = "wash_type"
)

// WashTypeCustomCode is the reserved wash type meaning "manually priced".
// It never appears in the pricing matrix and bulk pricing edits skip it.
const WashTypeCustomCode = "CUSTOM"

var validTaxonomyKinds = []TaxonomyKind{
	TaxonomyKindCarType,
	TaxonomyKindWashType,
}

// String implements fmt.Stringer.
func (k TaxonomyKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known TaxonomyKind.
func (k TaxonomyKind) IsValid() bool {
	for _, candidate := range validTaxonomyKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseTaxonomyKind converts raw input into a TaxonomyKind.
func ParseTaxonomyKind(value string) (TaxonomyKind, error) {
	for _, candidate := range validTaxonomyKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid taxonomy kind %q", value)
}
