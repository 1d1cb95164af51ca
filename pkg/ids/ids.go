// Package ids supplies aggregate identifiers. The domain never mints its own
// ids; services receive a generator so tests can pin them.
package ids

import "github.com/google/uuid"

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }
