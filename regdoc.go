// Package regdoc provides a local catalog of regulatory documents and FAQs
// with text and facet search, and an append-only audit trail of the
// administrative changes made to it.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, fs/, jsoniter/).
package regdoc
