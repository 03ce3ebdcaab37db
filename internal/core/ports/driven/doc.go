// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Library / Document: The external document access library. All
//     physical PDF manipulation (opening, pagination, text extraction,
//     page copying, text stamps, link regions, outlines, saving) happens
//     behind this port.
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ConfigStore: Application configuration defaults.
//   - HistoryStore: Search-run history. Without it, runs simply are not
//     recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
