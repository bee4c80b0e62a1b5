// Package shipment provides domain entities and business logic for shipment management
// in the courier system. It implements the Shipment aggregate root together with its
// packed elements and the sender/recipient party value object.
//
// The package includes:
//   - Shipment: The aggregate root holding tracking identity, parties, and packed elements
//   - Party: A value object for sender and recipient contact details
//   - Element: A value object for a single packed element (description plus free-form quantity)
//
// Key business rules:
//   - Shipments must have a valid unique identifier and a tracking number of the form T<counter>
//   - Sender and recipient must both carry a non-empty name
//   - Elements are owned by the shipment and are replaced as a whole on update
//   - Job number, CE number, and courier charge are optional attributes
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
