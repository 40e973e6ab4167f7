package domain

import "strings"

// BaggageType is the semantic category of a special bag.
type BaggageType string

// Known baggage types.
const (
	BaggageTypePet        BaggageType = "pet"
	BaggageTypeWheelchair BaggageType = "wheelchair"
	BaggageTypeWeapon     BaggageType = "weapon"
)

// Exception type codes carried on bags.
const (
	ExceptionCodePet    = "PET"
	ExceptionCodeWeapon = "WEAP"
)

// wheelchairCodes lists every wheelchair variant code.
var wheelchairCodes = map[string]struct{}{
	"WCBD": {},
	"WCBW": {},
	"WCHC": {},
	"WCHR": {},
	"WCHS": {},
	"WCLB": {},
}

// relevantCodes is the union of all codes that make a bag special.
var relevantCodes = func() map[string]struct{} {
	codes := make(map[string]struct{}, len(wheelchairCodes)+2)
	codes[ExceptionCodePet] = struct{}{}
	codes[ExceptionCodeWeapon] = struct{}{}
	for c := range wheelchairCodes {
		codes[c] = struct{}{}
	}
	return codes
}()

// IsWheelchairCode reports whether code is one of the wheelchair codes.
func IsWheelchairCode(code string) bool {
	_, ok := wheelchairCodes[code]
	return ok
}

// HasRelevantExceptionType reports whether the raw code list contains at least
// one special handling code. Codes are trimmed before matching.
func HasRelevantExceptionType(exceptionTypes *string) bool {
	if exceptionTypes == nil {
		return false
	}
	for _, code := range strings.Split(*exceptionTypes, ",") {
		if _, ok := relevantCodes[strings.TrimSpace(code)]; ok {
			return true
		}
	}
	return false
}

// ClassifyExceptionTypes maps a raw code list to a baggage type.
// A bag may carry several codes; pet wins over wheelchair, which wins over weapon.
// Segments are compared as-is. The second return value is false when no
// category applies.
func ClassifyExceptionTypes(exceptionTypes *string) (BaggageType, bool) {
	if exceptionTypes == nil {
		return "", false
	}

	codes := strings.Split(*exceptionTypes, ",")

	var hasWheelchair, hasWeapon bool
	for _, code := range codes {
		switch {
		case code == ExceptionCodePet:
			return BaggageTypePet, true
		case IsWheelchairCode(code):
			hasWheelchair = true
		case code == ExceptionCodeWeapon:
			hasWeapon = true
		}
	}

	switch {
	case hasWheelchair:
		return BaggageTypeWheelchair, true
	case hasWeapon:
		return BaggageTypeWeapon, true
	default:
		return "", false
	}
}
