// Package utils provides the general-purpose helper functions of engutil.
//
// Every function here is pure and independently callable. Nothing keeps
// state between calls and nothing touches the console; logging lives in the
// log package and host termination in the lifecycle package.
//
// # Components
//
//   - Strings: IsBlank, RemoveChar, RemoveChars, ReplaceFirst, FormatArray
//   - Color markup: Color, Color32, ColorizeText, ColorTag, ExpandHexShorthand
//   - Modular arithmetic: ModIncrement, ModDecrement, WrapMod, Modf
//   - Geometry: Vector2/3/4, AbsVector4, MinAngleBetween, approximate equality
//   - Logic gates: And, Nand, Or, Nor, Xor, Xnor
//   - Method probing: HasMethod, FindMethod, CapabilityTable
//   - Client state names: ClientStateToString
//
// # Example Usage
//
// Shorthand colors and markup:
//
//	utils.ExpandHexShorthand("#abc")                      // "#aabbcc"
//	utils.ColorizeText("ready", utils.Color32{R: 255})    // "<color=#FF0000>ready</color>"
//
// Cycling through a fixed number of slots:
//
//	slot := 0
//	utils.ModIncrement(&slot, 3) // 1
//	utils.ModDecrement(&slot, 3) // 0
//	utils.ModDecrement(&slot, 3) // 2
//
// Turning toward a heading the short way round:
//
//	delta := utils.MinAngleBetween(350, 10) // 20
//
// Probing for an optional method:
//
//	ok, err := utils.HasMethod(component, "OnReset")
//	if err != nil {
//	    // component was nil
//	}
package utils
