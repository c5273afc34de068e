// Package colorxform implements BitGrain's RGB(A)/YCbCr(A) component
// transform.
//
// Grounded on the teacher's internal/mct (multi-component transform):
// same per-plane []float64 in/out shape as ForwardICT/InverseICT, with
// JPEG2000's irreversible-color-transform coefficients replaced by
// BitGrain's BT.601-like full-range matrix (spec §4.3) and
// round-to-nearest + clamp instead of JPEG2000's unclamped float
// output (BitGrain always round-trips through 8-bit samples).
package colorxform

// Forward converts RGB (each length-n, sample range [0,255]) in place
// to YCbCr using the BT.601-like full-range formulation:
//
//	Y  =  0.299*R + 0.587*G + 0.114*B
//	Cb = -0.168736*R - 0.331264*G + 0.5*B + 128
//	Cr =  0.5*R - 0.418688*G - 0.081312*B + 128
func Forward(r, g, b []float64) {
	for i := range r {
		y := 0.299*r[i] + 0.587*g[i] + 0.114*b[i]
		cb := -0.168736*r[i] - 0.331264*g[i] + 0.5*b[i] + 128
		cr := 0.5*r[i] - 0.418688*g[i] - 0.081312*b[i] + 128

		r[i] = y
		g[i] = cb
		b[i] = cr
	}
}

// Inverse converts YCbCr (stored in y, cb, cr) back to RGB in place:
//
//	R = Y + 1.402*(Cr-128)
//	G = Y - 0.344136*(Cb-128) - 0.714136*(Cr-128)
//	B = Y + 1.772*(Cb-128)
func Inverse(y, cb, cr []float64) {
	for i := range y {
		r := y[i] + 1.402*(cr[i]-128)
		g := y[i] - 0.344136*(cb[i]-128) - 0.714136*(cr[i]-128)
		b := y[i] + 1.772*(cb[i]-128)

		y[i] = r
		cb[i] = g
		cr[i] = b
	}
}

// RoundClamp rounds v to the nearest integer and clamps it to [0,255].
func RoundClamp(v float64) byte {
	r := int(v + 0.5)
	if v < 0 {
		r = int(v - 0.5)
	}
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return byte(r)
}
