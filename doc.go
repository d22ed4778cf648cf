// SPDX-License-Identifier: EPL-2.0

// Package audsinc provides high-level audio processing utilities for Go
// applications.
//
// The heart of the module is a bandlimited sample-rate converter: a
// Kaiser-windowed sinc filter bank driven by a 32.32 fixed-point phase
// accumulator (the resample package), wrapped in a streaming pipeline (the
// audio package) and fed by decoders for common file formats.
//
// # Supported Formats
//
// The package supports decoding the following audio formats:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
// The simplest way to process audio is using ResampleToMono16:
//
//	// Decode an audio file
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	src, _ := decoder.Decode(file)
//
//	// Resample to 8kHz mono, 16-bit PCM
//	samples, rate, _ := audsinc.ResampleToMono16(src, 8000, 4096)
//
//	// samples is now []int16 at 8kHz mono
//
// # Audio Processing Pipeline
//
// For more control, build custom pipelines from the audio subpackage:
//
//	// Create a resampler
//	resampler := audio.NewResampler(source, 16000)
//
//	// Convert to mono
//	mono := audio.NewMonoMixer(resampler)
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// In-memory buffers convert in one shot with ResampleBuffer.
//
// # The Converter
//
// Sample rate conversion is bandlimited interpolation: every output frame
// is a 10-tap convolution against a filter interpolated from a bank of 512
// phases, designed for 80 dB of stop-band rejection. Chunked processing is
// bit-exact with one-shot processing, and the hot path allocates nothing.
// See the resample package for the low-level contract.
//
// # Writing WAV Files
//
// The package can write PCM WAV files:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	wav.WriteWAV16(file, 8000, samples)
//
// See the individual subpackages for more detailed documentation.
package audsinc
