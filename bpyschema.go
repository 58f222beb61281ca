// Package bpyschema extracts a version-annotated attribute schema for the
// node class hierarchy described by the Blender Python API reference.
// It walks the hierarchy encoded in the static HTML pages of every
// configured documentation version, canonicalizes attribute types, and
// compresses per-attribute version presence into ranges for code generation.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package bpyschema
