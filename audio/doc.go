// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio streaming primitives.
//
// This package contains the building blocks decoders and processors plug
// into:
//   - Source interface for audio input
//   - Resampler for bandlimited sample rate conversion
//   - MonoMixer for channel mixing
//   - Registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All audio decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines.
//
// # Resampling
//
// The Resampler changes the sample rate of audio by convolving with a
// Kaiser-windowed sinc filter bank (see the resample package). It keeps the
// filter history, the right-side padding and the running fixed-point phase
// across reads, so chunked reads reproduce a one-shot conversion exactly:
//
//	resampler := audio.NewResampler(source, 16000)
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// Resampling works for both upsampling and downsampling; equal rates pass
// the stream through untouched.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//
// # Decoder Registry
//
// The Registry maps format keys to decoders so callers can pick a decoder
// by file extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("wav")
package audio
