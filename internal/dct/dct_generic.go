//go:build !amd64 && !arm64

package dct

var selected = scalarKernel
