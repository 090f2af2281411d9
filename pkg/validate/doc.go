// Package validate implements the shipment batch validation engine: an
// ordered sequence of per-domain cleaning and validation stages over a shared
// row store, an aggregated defect report, and a policy gate that fails the
// run when critical defects are present.
//
// Stages are registered by the rules subpackage and executed by a Runner in a
// fixed order. Cleaners rewrite column values in place (idempotently, never
// changing the row count); validators read the table and report defects
// without mutating it. Every validator runs to completion so a single pass
// produces an exhaustive report.
package validate
