// Package rules defines the shipment validation stages: per-domain cleaners
// and validators registered with the validate package in pipeline order.
// Importing this package (blank import from the CLI) wires the full rule set.
package rules
