package errors

// Code represents an error code
type Code string

// Generic error codes used by the service layer
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Rules-engine error codes. These mirror the validation taxonomy the engine
// reports to players: an out-of-budget point buy or an unmet feat
// prerequisite is a normal occurrence, so it travels as a structured value,
// never as control flow.
const (
	// CodeOutOfRange indicates an ability score outside its legal bounds
	CodeOutOfRange Code = "OUT_OF_RANGE"
	// CodeBudgetExceeded indicates a point-buy or skill-point overspend
	CodeBudgetExceeded Code = "BUDGET_EXCEEDED"
	// CodeRankCeilingExceeded indicates a skill rank above its per-level cap
	CodeRankCeilingExceeded Code = "RANK_CEILING_EXCEEDED"
	// CodePrerequisiteNotMet indicates a feat whose prerequisites fail
	CodePrerequisiteNotMet Code = "PREREQUISITE_NOT_MET"
	// CodeNoFeatSlots indicates a feat selection beyond the available slots
	CodeNoFeatSlots Code = "NO_FEAT_SLOTS_AVAILABLE"
	// CodeMissingSelection indicates no race or class chosen yet; expected
	// mid-wizard, so it is a soft error
	CodeMissingSelection Code = "MISSING_SELECTION"
	// CodeUnknownRule indicates a reference to a rule id absent from the
	// loaded tables. Always fatal: the snapshot and the tables are from
	// incompatible versions.
	CodeUnknownRule Code = "UNKNOWN_RULE_ID"
	// CodeUnspentBudget flags leftover skill points. Warning only; it
	// never blocks finalization.
	CodeUnspentBudget Code = "UNSPENT_BUDGET"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Fatal reports whether the code aborts processing entirely rather than
// being collected into a validation report.
func (c Code) Fatal() bool {
	return c == CodeUnknownRule || c == CodeInternal
}
