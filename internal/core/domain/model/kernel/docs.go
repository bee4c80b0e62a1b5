// Package kernel provides core domain primitives and utilities for the courier system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A value object for monetary amounts with exact decimal arithmetic
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
//
// The package provides rich domain behavior while encapsulating implementation
// details behind small value types.
package kernel
