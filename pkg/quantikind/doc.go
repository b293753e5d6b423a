// Package quantikind binds a semantic kind from package kinds to a bare
// quantity from package units. A Value keeps its kind through arithmetic:
// same-dimension results keep the operand's kind, and results with a new
// dimension are re-tagged by the kind registry's resolution engine.
//
// Binary operations between two Values require kind-equivalent operands
// (same base kind). Violations are returned as errors; the generated typed
// layer produced by internal/codegen turns the same rules into compile
// errors.
package quantikind
