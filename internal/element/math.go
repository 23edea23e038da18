package element

import "math"

// Elementary functions over any element kind.
//
// Every function goes through a float64 intermediate and converts back, so
// integer kinds lose the fractional part. Domain errors are not checked:
// Log(-1) is NaN for floats and 0 for integers.

// Exp returns e**v.
func Exp[E Element](v E) E { return apply(v, math.Exp) }

// Log returns the natural logarithm of v.
func Log[E Element](v E) E { return apply(v, math.Log) }

// Log1p returns the natural logarithm of 1+v.
func Log1p[E Element](v E) E { return apply(v, math.Log1p) }

// Sqrt returns the square root of v.
func Sqrt[E Element](v E) E { return apply(v, math.Sqrt) }

// Cos returns the cosine of v.
func Cos[E Element](v E) E { return apply(v, math.Cos) }

// Sin returns the sine of v.
func Sin[E Element](v E) E { return apply(v, math.Sin) }

// Tanh returns the hyperbolic tangent of v.
func Tanh[E Element](v E) E { return apply(v, math.Tanh) }

// Erf returns the error function of v.
func Erf[E Element](v E) E { return apply(v, math.Erf) }

// Powf returns v**exponent.
func Powf[E Element](v E, exponent float32) E {
	e := float64(exponent)
	return apply(v, func(x float64) float64 { return math.Pow(x, e) })
}

func apply[E Element](v E, fn func(float64) float64) E {
	return FromFloat64[E](fn(ToFloat64(v)))
}
