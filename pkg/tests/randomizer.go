package tests

import (
	"math/rand"
	"time"
)

const identifierAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789-"

type Randomizer struct {
	Bool func() bool
	// Identifier returns a non-blank deal key of 1 to 36 characters.
	Identifier func() string
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // for tests

	return Randomizer{
		Bool: func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Identifier: func() string {
			b := make([]byte, 1+random.Intn(36)) //nolint:mnd // uuid length
			for i := range b {
				b[i] = identifierAlphabet[random.Intn(len(identifierAlphabet)-1)]
			}

			return string(b)
		},
	}
}
