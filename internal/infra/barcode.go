package infra

import (
	"bytes"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// RenderCode128PNG encodes value as a Code 128 barcode and returns it as a
// PNG scaled to width×height pixels. Fails when the value contains bytes
// Code 128 cannot carry or the requested size is too small for the symbol.
func RenderCode128PNG(value string, width, height int) ([]byte, error) {
	bc, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
