// Package formcheck exposes billing form validation and list reordering over
// net/http as a small, mountable component.
//
// Routes (relative to the base path):
//
//	POST /api/forms/validate  {"kind": "unite", "data": {...}}
//	POST /api/forms/reorder   {"items": [...], "from": 0, "to": 2}
//	GET  /api/forms/kinds     ?kind=unite to restrict to one form
//
// Handlers only depend on the Mux interface, so both *http.ServeMux and chi
// routers can host them.
package formcheck
