// Package deliverynote provides domain entities and business logic for delivery notes
// in the courier system. It implements the DeliveryNote aggregate root with its billed
// line items and the derived monetary figures.
//
// The package includes:
//   - DeliveryNote: The aggregate root holding note identity, client details, and items
//   - Item: A value object for a billed line item (quantity, description, unit price)
//
// Key business rules:
//   - Notes must have a valid unique identifier and a DN<counter> note number
//   - Item validity is decided once, at construction: quantity and price must be
//     valid decimals, so persisted items always equal the items summed into subtotal
//   - Subtotal, VAT (15%), and total are computed once at creation and persisted;
//     they are never recomputed from the item list afterwards
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package deliverynote
