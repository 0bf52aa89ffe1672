// Package legacy translates the older human-readable category names still
// sent by existing clients into the canonical schema codes, and back. The
// engine itself only ever sees canonical codes.
package legacy

var carCategoryByName = map[string]string{
	"Sedan":     "SEDAN",
	"Hatchback": "SEDAN",
	"Premium":   "PREMIUM_CLASS",
	"Jeep":      "SMALL_JEEP",
	"Big Jeep":  "BIG_JEEP",
	"Truck":     "BIG_JEEP",
	"Minivan":   "MICROBUS",
}

var washTypeByName = map[string]string{
	"Complete Wash":     "COMPLETE",
	"Outer Wash":        "OUTER",
	"Interior Wash":     "INNER",
	"Interior Cleaning": "INNER",
	"Engine Wash":       "ENGINE",
	"Chemical Wash":     "CHEMICAL",
}

var carCategoryNames = map[string]string{
	"SEDAN":         "Sedan",
	"PREMIUM_CLASS": "Premium",
	"SMALL_JEEP":    "Jeep",
	"BIG_JEEP":      "Big Jeep",
	"MICROBUS":      "Minivan",
}

var washTypeNames = map[string]string{
	"COMPLETE": "Complete Wash",
	"OUTER":    "Outer Wash",
	"INNER":    "Interior Wash",
	"ENGINE":   "Engine Wash",
	"CHEMICAL": "Chemical Wash",
}

// CarCategoryCode maps a legacy car category name to its canonical code.
// Canonical codes and unknown values pass through unchanged so downstream
// validation reports them against the taxonomy.
func CarCategoryCode(input string) string {
	if code, ok := carCategoryByName[input]; ok {
		return code
	}
	return input
}

// WashTypeCode maps a legacy wash type name to its canonical code.
func WashTypeCode(input string) string {
	if code, ok := washTypeByName[input]; ok {
		return code
	}
	return input
}

// CarCategoryName returns the legacy display name for a canonical code, or
// the code itself when no mapping exists.
func CarCategoryName(code string) string {
	if name, ok := carCategoryNames[code]; ok {
		return name
	}
	return code
}

// WashTypeName returns the legacy display name for a canonical code.
func WashTypeName(code string) string {
	if name, ok := washTypeNames[code]; ok {
		return name
	}
	return code
}
