// Package light provides a platform-independent, immutable color value.
//
// # Overview
//
// A Color holds four float64 channels (red, green, blue, alpha) in [0, 1].
// HSB, HSL, web (0-255) and hexadecimal views are derived from those
// channels on every call, so they can never go stale. Every modifier
// returns a new Color.
//
// # Quick Start
//
//	import "github.com/gogpu/light"
//
//	c := light.RGB(1, 0.5, 0)
//	c.Hex()           // "FF7F00"
//	c.WebComponents() // [255 127 0]
//
//	sky, err := light.ParseHex("#87CEEB")
//	if err != nil {
//	    // handle error
//	}
//	darker := sky.Darken(2).WithAlpha(0.8)
//
//	teal, _ := light.Named("teal")
//	mix := teal.Add(light.White) // per-channel mean
//
// # Construction
//
// Constructors never fail on numbers: out-of-range channels are clamped.
// Only string parsing (ParseHex, Named, Parse) and decoding return errors.
//
// # Capability Contract
//
// Color implements colorrep.Representable. Other color types that
// implement the same two methods get every conversion and operator from
// package colorrep, and can be mixed with Color:
//
//	var other myColor
//	light.Red.Add(other)               // light.Color
//	colorrep.Add(other, light.Red)     // myColor
//
// # Interoperability
//
// Color implements color.Color from the standard library, and FromColor
// converts back. Terminal toolkits are bridged by the packages under
// integration/.
//
// # Serialization
//
// Colors encode to JSON and YAML as four named fields:
//
//	{"red":1,"green":0.5,"blue":0,"alpha":1}
//
// Decoding also accepts a hex string or a CSS color keyword.
package light
