// Package diagnostic provides severity-tagged findings for schema checks.
//
// The generate path fails on the first problem; the check path keeps
// walking the schema and records everything it finds here so authors can
// fix a schema in one round trip.
//
// Key types:
//   - Diagnostic: a single finding, located by declaration and field name
//   - Diagnostics: error/warning buckets with report helpers
package diagnostic
