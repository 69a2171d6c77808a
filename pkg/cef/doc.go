// Package cef builds ArcSight Common Event Format (CEF) events and renders them
// into the single text line a SIEM collector expects:
//
//	CEF:<version>|<vendor>|<product>|<device-version>|<id>|<name>|<severity>|<extension>
//
// Events are validated once, when they are constructed, and are immutable
// afterwards. Rendering escapes every field for its context (prefix field,
// extension key, extension value) so a field value can never break the line
// grammar. Nothing in this package performs I/O; framing and transport of the
// produced line belong to the caller.
//
// All types are safe for concurrent use.
package cef
