// Package errors provides the structured error handling for the rules engine.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - The rules-engine validation taxonomy (out of range, budget exceeded,
//     rank ceiling, prerequisite not met, feat slots, missing selection,
//     unknown rule id)
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.OutOfRangef("strength score %d is outside 8-18", score)
//
// Adding metadata:
//
//	err := errors.UnknownRulef("class %q not in rule tables", classID).
//	    WithMeta("class_id", classID)
//
// Wrapping errors:
//
//	if err := repo.Get(id); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// # Error Checking
//
//	if errors.IsUnknownRule(err) {
//	    // Tables and snapshot are from incompatible versions; abort.
//	}
//
// # Two Kinds of Failure
//
// Expected player mistakes (overspent point buy, unmet feat prerequisite)
// are reported as data inside a ValidationReport, not as Go errors. The
// constructors here back both uses: the engine converts them into report
// entries, while contract violations (nil config, unknown rule ids, storage
// failures) propagate as returned errors.
//
// # Validation Errors
//
// Using the validation builder for input contracts:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("playerID", input.PlayerID, vb)
//	errors.ValidatePositive("level", input.Level, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
