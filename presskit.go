// Package presskit extracts structured article data (title, authors,
// publish date, body text, images) from arbitrary, noisy HTML pages
// without relying on any specific publisher's markup convention. Every
// field may be present in zero, one, or several competing locations
// (meta tags, JSON-LD blocks, visible DOM elements, URL substrings);
// presskit tries a fixed sequence of sources per field and returns the
// first value that passes validation, degrading gracefully when none do.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// readability/, sqlite/).
package presskit
