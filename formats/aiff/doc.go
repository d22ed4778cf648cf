// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding on
// top of github.com/go-audio/aiff.
//
// The decoder returns an audio.Source of interleaved float32 samples in
// [-1.0, 1.0]. Only 16-bit PCM files are supported; other depths return
// ErrOnlyPCM16bitSupported.
//
//	decoder := aiff.Decoder{}
//	source, err := decoder.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// AIFF is big-endian and stores its sample rate as an 80-bit float; the
// go-audio decoder handles both, so the output is indistinguishable from
// the WAV path. Encoding is not supported.
package aiff
