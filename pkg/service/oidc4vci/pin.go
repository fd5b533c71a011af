/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"fmt"
	"math/rand"
	"strings"
)

const pinDigits = 6

// PinGenerator produces and validates the numeric user PIN for
// pre-authorized offers.
type PinGenerator struct{}

// NewPinGenerator creates a PinGenerator.
func NewPinGenerator() *PinGenerator {
	return &PinGenerator{}
}

// Generate returns a fresh PIN. The challenge is unused by this
// implementation but kept in the contract for OTP-style generators.
func (p *PinGenerator) Generate(_ string) string {
	var pin strings.Builder

	for i := 0; i < pinDigits; i++ {
		pin.WriteString(fmt.Sprint(rand.Int31n(10))) //nolint:gosec
	}

	return pin.String()
}

// Validate compares the expected PIN with the user's input.
func (p *PinGenerator) Validate(expected, got string) bool {
	return expected == got
}
