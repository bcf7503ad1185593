// Package modeldocs turns vendor AI-model documentation pages into
// canonical, AI-readable context documents. It fetches documentation
// HTML, extracts structured facts (description, parameters, endpoints,
// code samples, tables), validates the result, and renders it as
// Markdown plus a structured JSON record.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// http/, fs/).
package modeldocs
