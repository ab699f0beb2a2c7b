// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// UUIDGenerator hands out bookmark ids and trace ids. Ids are UUIDv7, so
// ids generated on one device sort by creation time.
type UUIDGenerator struct {
	v7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{v7: uuid.NewV7}
}

// Generate returns a new id. When the v7 source fails a random v4 id is
// returned instead; ids stay unique, only the ordering is lost.
func (g *UUIDGenerator) Generate() string {
	id, err := g.v7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
