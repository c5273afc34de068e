// Package metrics computes PSNR and single-global-window SSIM between
// an original and reconstructed 8-bit sample buffer (spec §4.10).
//
// Ported directly from original_source/c/metrics.c, which the teacher
// has no analogue for (JPEG2000 quality is typically judged by
// rate-distortion curves, not a standalone metrics API) — this is
// translated into Go rather than grounded on a teacher file, matching
// the spec's own constants exactly rather than inventing new ones.
package metrics

import "math"

const (
	c1 = 6.5025  // (0.01*255)^2
	c2 = 58.5225 // (0.03*255)^2
)

// PSNR returns the peak signal-to-noise ratio in dB between orig and
// recon, which must have equal length. Returns 99.0 for identical
// inputs (MSE == 0), matching the reference sentinel rather than +Inf.
func PSNR(orig, recon []byte) float64 {
	n := len(orig)
	if n == 0 {
		return 0
	}
	var sumSq uint64
	for i := 0; i < n; i++ {
		d := int(orig[i]) - int(recon[i])
		sumSq += uint64(d * d)
	}
	mse := float64(sumSq) / float64(n)
	if mse <= 0 {
		return 99.0
	}
	return 10.0 * math.Log10((255.0*255.0)/mse)
}

// SSIM returns the structural similarity index between orig and
// recon, computed over the whole buffer as a single global window
// (spec §4.10) rather than the usual sliding-window formulation.
func SSIM(orig, recon []byte) float64 {
	n := len(orig)
	if n == 0 {
		return 0
	}
	var muX, muY float64
	for i := 0; i < n; i++ {
		muX += float64(orig[i])
		muY += float64(recon[i])
	}
	muX /= float64(n)
	muY /= float64(n)

	var sigmaX2, sigmaY2, sigmaXY float64
	for i := 0; i < n; i++ {
		dx := float64(orig[i]) - muX
		dy := float64(recon[i]) - muY
		sigmaX2 += dx * dx
		sigmaY2 += dy * dy
		sigmaXY += dx * dy
	}
	sigmaX2 /= float64(n)
	sigmaY2 /= float64(n)
	sigmaXY /= float64(n)

	l := (2*muX*muY + c1) / (muX*muX + muY*muY + c1)
	sigX, sigY := math.Sqrt(sigmaX2), math.Sqrt(sigmaY2)
	c := (2*sigX*sigY + c2) / (sigmaX2 + sigmaY2 + c2)
	s := (sigmaXY + c2/2) / (sigX*sigY + c2/2)

	return l * c * s
}
