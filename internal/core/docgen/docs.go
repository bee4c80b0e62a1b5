// Package docgen implements the document generation engine for printable courier
// documents. It turns variable-length business records into a paginated, precisely
// laid-out sequence of abstract drawing instructions.
//
// The package includes:
//   - Instruction: A small tagged-variant drawing instruction set (text, rectangle,
//     line, image) with explicit geometry, decoupled from any rendering library
//   - WrapText: A greedy word-wrap over an externally supplied width measure
//   - Layout: A stateful cursor-based placement engine with page-break decisions
//     and a two-pass finalization that stamps page numbers and footers
//   - WaybillAssembler and DeliveryNoteAssembler: Business-specific layout drivers
//
// Layout works in two passes: the total page count is only known once all content
// has been placed, so footers ("Page i of N") are stamped in a finalization pass over
// the accumulated pages rather than streamed out. Everything in this package is pure
// with respect to external state; encoding instructions to actual document bytes is
// an adapter concern.
package docgen
