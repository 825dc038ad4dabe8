// Package models defines the core domain records for settleup.
//
// A Split is the unit of persistence: a named group of contributors,
// the total each of them paid into the shared pool, and the settlement
// transfers derived from those payments. Transfers are recomputed by
// the engine whenever a split changes; the stored copy exists so reads
// do not need to re-derive it.
//
// Contributors are identified by display name within a split (unique
// case-insensitively, enforced at the API boundary). Users are
// registered accounts and exist only for authentication and split
// ownership.
package models
