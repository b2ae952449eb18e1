// Package model contains domain models shared across layers.
// Entities reference each other by id only; no struct embeds another entity.
package model
