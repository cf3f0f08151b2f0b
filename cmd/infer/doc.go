// Package main runs a trained network over a manifest or the MNIST test set
// and prints every output next to its label.
package main
