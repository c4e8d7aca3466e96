// Package kernel holds the domain primitives shared by every aggregate
// in the POS system.
//
// Currently that is a single value object:
//   - UUID: a validated, immutable identifier for tenants, orders, and
//     everything they own
//
// Aggregates build on these primitives instead of raw library types, so
// identifier validation happens once here rather than in every
// constructor that receives an id.
package kernel
