// Package formvalidation implements presence-only validation for the billing
// forms (services, units, tariff types, tariffs and special tariffs).
//
// A Catalog maps every FormKind to the ordered list of fields that must be
// filled in and carries one label table shared by all kinds. The default
// catalog is embedded in the package; callers may load their own from YAML,
// JSON or an OpenAPI document.
//
// Validation only checks that required fields are present and non-blank.
// Length limits, numeric ranges and cross-field rules belong to the per-form
// validators in package formrules.
package formvalidation
