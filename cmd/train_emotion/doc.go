// Package main provides the program for training the emotion classifier on
// the RAVDESS dataset. Audio files are loaded and featurized on the fly, a
// small convolutional network is trained for a fixed number of epochs and
// finally evaluated on the held out test files.
package main
