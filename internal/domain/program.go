package domain

// RecoveryProgram is the fellowship code a user selected during onboarding
// (e.g. "AA", "NA", "other"). Unknown codes are accepted as-is.
type RecoveryProgram string

const ProgramOther RecoveryProgram = "other"

var programNames = map[RecoveryProgram]string{
	"AA":         "Alcoholics Anonymous",
	"NA":         "Narcotics Anonymous",
	"CA":         "Cocaine Anonymous",
	"GA":         "Gamblers Anonymous",
	"OA":         "Overeaters Anonymous",
	"SA":         "Sexaholics Anonymous",
	"ACA":        "Adult Children of Alcoholics",
	"Al-Anon":    "Al-Anon",
	"SLAA":       "Sex & Love Addicts Anonymous",
	"DA":         "Debtors Anonymous",
	ProgramOther: "their recovery program",
}

func (p RecoveryProgram) String() string { return string(p) }

// DisplayName returns the fellowship's full name, or a generic phrase
// for unknown or empty codes.
func (p RecoveryProgram) DisplayName() string {
	if name, ok := programNames[p]; ok {
		return name
	}
	return programNames[ProgramOther]
}

// IsSpecific reports whether the code names a concrete fellowship,
// i.e. it is neither empty nor "other".
func (p RecoveryProgram) IsSpecific() bool {
	return p != "" && p != ProgramOther
}
