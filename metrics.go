package bitgrain

import "github.com/IRodriguez13/bitgrain/internal/metrics"

// PSNR returns the peak signal-to-noise ratio, in dB, between two
// equal-length raw 8-bit sample buffers (spec §4.10). Multi-channel
// images are treated as one flat sequence of samples.
func PSNR(orig, recon []byte) float64 {
	return metrics.PSNR(orig, recon)
}

// SSIM returns the structural similarity index between two
// equal-length raw 8-bit sample buffers, computed over a single
// global window rather than the usual sliding-window formulation
// (spec §4.10).
func SSIM(orig, recon []byte) float64 {
	return metrics.SSIM(orig, recon)
}
