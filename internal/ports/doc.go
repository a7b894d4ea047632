// Package ports defines interfaces between layers in the hexagonal
// architecture. Store and generator ports are implemented by outbound
// adapters and called by the application layer; use-case ports are
// implemented by the application layer and called by inbound adapters
// (handlers). Commands are the plain-data inputs of the use-case boundary.
package ports
