// Package formrules holds the field-level business rules of the billing forms
// (length limits, positive amounts, date ordering). Presence checks live in
// formvalidation; Check combines both into a single Report.
package formrules
