//go:build !amd64 && !arm64

package quant

var selected = scalarKernel
