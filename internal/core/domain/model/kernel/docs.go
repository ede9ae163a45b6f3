// Package kernel provides core domain primitives shared across the procurement
// domain model. It holds the identity and tenancy value objects every aggregate
// is built on: UUID for entity identity and StoreContext for the explicit
// tenant (store) each operation runs against.
//
// Nothing in this package carries business behavior of its own; it exists so
// that aggregates, commands and adapters agree on how identity and tenancy are
// represented and validated.
package kernel
