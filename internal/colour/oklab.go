// Package colour provides OKLab colour space conversion.
package colour

import "math"

// RGBToOKLab converts an sRGB colour to OKLab.
// Implements the standard sRGB → linear → LMS → OKLab pipeline.
func RGBToOKLab(rgb RGB) OKLab {
	// sRGB → linear RGB.
	lr := srgbToLinear(float64(rgb.R) / 255.0)
	lg := srgbToLinear(float64(rgb.G) / 255.0)
	lb := srgbToLinear(float64(rgb.B) / 255.0)

	// M1: linear RGB → LMS.
	l := 0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb
	m := 0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb
	s := 0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb

	// Cube root nonlinearity.
	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	// M2: LMS' → Lab.
	return OKLab{
		L: 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		A: 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		B: 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp,
	}
}

// OKLabToRGB converts an OKLab colour back to sRGB, clamping out-of-gamut
// values to the displayable range.
func OKLabToRGB(lab OKLab) RGB {
	// Inverse M2: Lab → LMS'.
	lp := lab.L + 0.3963377774*lab.A + 0.2158037573*lab.B
	mp := lab.L - 0.1055613458*lab.A - 0.0638541728*lab.B
	sp := lab.L - 0.0894841775*lab.A - 1.2914855480*lab.B

	// Cube: LMS' → LMS.
	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	// Inverse M1: LMS → linear RGB.
	lr := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	lg := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	lb := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	// Linear RGB → sRGB, clamped.
	return RGB{
		R: uint8(math.Round(linearToSRGB(clamp(lr, 0, 1)) * 255)),
		G: uint8(math.Round(linearToSRGB(clamp(lg, 0, 1)) * 255)),
		B: uint8(math.Round(linearToSRGB(clamp(lb, 0, 1)) * 255)),
	}
}

// lerpOKLab linearly interpolates between two OKLab colours.
// weight is the weight on a; weight=1 returns a, weight=0 returns b.
func lerpOKLab(a, b OKLab, weight float64) OKLab {
	return OKLab{
		L: a.L*weight + b.L*(1-weight),
		A: a.A*weight + b.A*(1-weight),
		B: a.B*weight + b.B*(1-weight),
	}
}

// srgbToLinear converts a single sRGB component [0,1] to linear RGB.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB converts a single linear RGB component [0,1] to sRGB.
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}
