// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding and 16-bit PCM encoding.
//
// Decoding goes through github.com/go-audio/wav and supports PCM 16-bit
// files with any channel count and sample rate. The decoder returns an
// audio.Source of interleaved float32 samples in [-1.0, 1.0]:
//
//	decoder := wav.Decoder{}
//	source, err := decoder.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Writing uses a streaming encoder that works on any io.Writer:
//
//	samples := []int16{100, -100, 200, -200}
//	err := wav.WritePCM16(file, 48000, 2, samples)
//
// WriteWAV16 is the mono shorthand. Header problems are reported through the
// sentinel values in errors.go (ErrNotWavFile, ErrOnlyPCM16bitSupported,
// ErrUnsupportedWavLayout); a non-PCM audio format and a failed read of the
// input return plain formatted errors.
package wav
