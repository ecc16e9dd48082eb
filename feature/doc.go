// Package feature computes spectrogram and mel-spectrogram features from
// waveforms.
//
// Frames are centered: the signal is reflect-padded by half the FFT size on
// both sides, so a waveform of n samples yields 1 + n/hop frames. The window
// is a periodic Hann window of the configured window size, zero-padded to
// the FFT size. Power values are log compressed.
package feature
