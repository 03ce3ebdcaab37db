// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The match-and-assemble pipeline lives here: the Scanner, the composite
// Assembler, the report builders and the output naming policy.
package services
