// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding on top of
// github.com/jfreymuth/oggvorbis.
//
// The decoder returns an audio.Source of interleaved float32 samples in
// [-1.0, 1.0]; channel count and sample rate come from the stream headers.
//
//	decoder := vorbis.Decoder{}
//	source, err := decoder.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Encoding is not supported.
package vorbis
