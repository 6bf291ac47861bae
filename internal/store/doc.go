// Package store defines the persistence interfaces for users and tasks,
// along with the sentinel errors all implementations share. Handlers depend
// only on these interfaces so the backing storage can later move to a real
// database without touching them.
package store
