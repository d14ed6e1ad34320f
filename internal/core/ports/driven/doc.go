// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - BaselineStore: Durable persistence of the baseline collection
//   - Digester: Content digest computation
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the relevant commands degrade gracefully:
//
//   - Clipboard: System clipboard access for copying digests
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
