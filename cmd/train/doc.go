// Package main trains a feed-forward network by hill climbing on a manifest
// of record files or on the MNIST digits. Every generation prints one log
// line, the run log goes to logs/log_N.log and the best network is saved
// to -dstmodel.
package main
