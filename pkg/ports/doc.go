// Package ports defines the boundary interfaces of the library.
//
// Adapters under pkg/adapters and internal/adapters implement these
// interfaces. Application code depends on the interfaces, never on a
// concrete adapter, which keeps storage backends swappable.
package ports
