// Package trainer provides high-level training orchestration for the emotion
// networks. It runs fixed-epoch loops of batched backpropagation over data
// loaders and evaluates networks on held out data.
package trainer
