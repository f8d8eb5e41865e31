// Package fix64 provides deterministic Q32.32 fixed-point arithmetic for
// lockstep and replay simulation, where every participant must compute
// bit-identical results regardless of CPU, compiler, or FPU behavior.
//
// Features:
//   - Saturating add/sub/mul plus a checked set that errors instead
//   - 65-bit long division with half-to-even rounding on the final bit
//   - Integer-only transcendentals: Sqrt, Log2, Pow2, Pow, Ln, Exp,
//     Sin, Cos, Tan, Asin, Acos, Atan, Atan2
//   - Exact decimal string round-trip for serialized raw values
//
// Fix64 is a defined integer type, so the native comparison operators work
// directly. The native arithmetic operators act on raw units: + and - wrap on
// overflow, * and / do not rescale. Simulation code should use the named
// operations; raw operators appear inside this package only where the range
// is already proven.
package fix64
