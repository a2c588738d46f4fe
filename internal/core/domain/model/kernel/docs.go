// Package kernel provides core domain primitives for the bloqnet system.
//
// The package includes UUID, a value object for unique identifiers with
// validation, comparison, and JSON support. Every entity in the network
// (bloqs, lockers, rents) is identified by a system-generated UUID that
// clients may never choose.
//
// The primitives are immutable and thread-safe, making them suitable for
// concurrent use.
package kernel
