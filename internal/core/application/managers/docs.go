// Package managers contains the three entity managers sitting on top of the
// shared record store: BloqManager, LockerManager, and RentManager.
//
// Each manager receives handles to the record tables it needs, performs
// payload validation, reads the affected records, checks invariants, mutates,
// and writes back. Managers never call each other; cross-entity consistency
// (such as "does this bloq exist before creating a locker in it") is enforced
// by direct reads against the other entity's table. That keeps the managers
// decoupled, at the price of consistency rules living locally in the
// dependent entity.
//
// The store offers no multi-record transactions, so every cascading delete
// and every rent transition touching locker occupancy is a sequence of
// independent writes with a documented partial-failure window.
package managers
