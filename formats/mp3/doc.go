// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding on top of
// github.com/hajimehoshi/go-mp3.
//
// The decoder returns an audio.Source of interleaved float32 samples in
// [-1.0, 1.0]. go-mp3 always emits 16-bit stereo PCM, so the source reports
// two channels regardless of the encoded layout; use audio.MonoMixer to
// fold it down.
//
//	decoder := mp3.Decoder{}
//	source, err := decoder.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Encoding is not supported.
package mp3
