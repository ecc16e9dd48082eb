// Package audio loads mono waveforms from WAV and FLAC files and normalizes
// their duration to a fixed number of samples.
//
// Samples are float64 values in [-1, 1]. Multi-channel files are reduced to
// their first channel.
package audio
