package mmseg

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

const mb = 1024 * 1024

// TestTargetClass exercises the pure sizing policy across the threshold
// boundaries.
func TestTargetClass(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		threshold int
		want      Class
	}{
		{"below half a huge page", mb - 1, 50, Default},
		{"exactly half a huge page", mb, 50, Huge},
		{"well above threshold", 16 * mb, 50, Huge},
		{"zero size is not special-cased", 0, 50, Default},
		{"zero threshold routes everything huge", 0, 0, Huge},
		{"threshold 100 just under a full page", 2*mb - 1, 100, Default},
		{"threshold 100 at a full page", 2 * mb, 100, Huge},
		{"threshold above 100 at a full page", 2 * mb, 101, Default},
		{"threshold above 100 at 3MB", 3 * mb, 101, Huge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetClass(tt.size, tt.threshold))
		})
	}
}

// TestMappedSize verifies page-granular rounding for both classes.
func TestMappedSize(t *testing.T) {
	ps := os.Getpagesize()

	assert.Zero(t, mappedSize(0, Default), "zero rounds to an empty mapping")
	assert.Zero(t, mappedSize(0, Huge))

	assert.Equal(t, ps, mappedSize(1, Default))
	assert.Equal(t, ps, mappedSize(ps, Default))
	assert.Equal(t, 2*ps, mappedSize(ps+1, Default))

	assert.Equal(t, HugeBytes, mappedSize(1, Huge))
	assert.Equal(t, HugeBytes, mappedSize(HugeBytes, Huge))
	assert.Equal(t, 2*HugeBytes, mappedSize(HugeBytes+1, Huge))
}

func TestClassBytes(t *testing.T) {
	assert.Equal(t, os.Getpagesize(), Default.Bytes())
	assert.Equal(t, 2*mb, Huge.Bytes())
	assert.Equal(t, "default", Default.String())
	assert.Equal(t, "huge", Huge.String())
}
