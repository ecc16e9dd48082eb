// Package main provides the program which classifies audio files with a
// model saved by train_emotion. The feature configuration must equal the
// one the model was trained with.
package main
