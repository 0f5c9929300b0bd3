// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package colorrep defines the color capability contract and every
// conversion and blending operation derived from it.
//
// A conforming type only supplies its canonical [R, G, B, A] component
// vector and a way to rebuild itself from components:
//
//	type Componenter interface {
//	    Components() [4]float64
//	}
//
//	type Representable[T any] interface {
//	    Componenter
//	    FromComponents(components ...float64) T
//	}
//
// Everything else (HSB, HSL, web and hex views, the arithmetic-style
// operators, tonal transforms) is provided here as generic functions.
// Derived views are recomputed on every call and never cached.
//
// # Cross-type operations
//
// Binary operations accept any Componenter on the right and return the
// concrete type of the left operand:
//
//	mixed := colorrep.Add(light.Red, otherColor) // light.Color
//
// # Thread Safety
//
// All functions are pure. Conforming values are expected to be immutable,
// which makes every operation safe for concurrent use.
package colorrep
