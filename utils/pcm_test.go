// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0, want: 0},
		{name: "max positive", input: 1, want: math.MaxInt16},
		{name: "max negative", input: -1, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, want: 16383},
		{name: "half negative", input: -0.5, want: -16383},
		{name: "small positive", input: 0.001, want: 32},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp under min", input: -100, want: -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestInt16ToFloat32(t *testing.T) {
	t.Parallel()

	if got := Int16ToFloat32(0); got != 0 {
		t.Errorf("Int16ToFloat32(0) = %v, want 0", got)
	}
	if got := Int16ToFloat32(math.MinInt16); got != -1 {
		t.Errorf("Int16ToFloat32(MinInt16) = %v, want -1", got)
	}
	if got := Int16ToFloat32(16384); got != 0.5 {
		t.Errorf("Int16ToFloat32(16384) = %v, want 0.5", got)
	}
}

func TestAppendInt16LE(t *testing.T) {
	t.Parallel()

	samples := []float32{0, 0.5, -0.5, 1}
	got := AppendInt16LE(nil, samples, 1)

	if len(got) != len(samples)*2 {
		t.Fatalf("len = %d, want %d", len(got), len(samples)*2)
	}

	for i, s := range samples {
		v := int16(binary.LittleEndian.Uint16(got[2*i:]))
		if want := Float32ToInt16(s); v != want {
			t.Errorf("sample %d = %d, want %d", i, v, want)
		}
	}
}

func TestAppendInt16LE_GainClips(t *testing.T) {
	t.Parallel()

	got := AppendInt16LE(nil, []float32{0.25, 0.75, -0.75}, 2)

	want := []int16{16383, math.MaxInt16, -math.MaxInt16}
	for i, w := range want {
		v := int16(binary.LittleEndian.Uint16(got[2*i:]))
		if v != w {
			t.Errorf("sample %d = %d, want %d", i, v, w)
		}
	}
}

func TestAppendInt16LE_KeepsPrefix(t *testing.T) {
	t.Parallel()

	prefix := []byte{0xAA, 0xBB}
	got := AppendInt16LE(prefix, []float32{0}, 1)

	if len(got) != 4 || got[0] != 0xAA || got[1] != 0xBB {
		t.Errorf("prefix not preserved: %v", got)
	}
}
