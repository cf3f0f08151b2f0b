// Package trainer provides the hill-climbing training loop for feed-forward networks.
// Every generation mutates two copies of the champion, scores both on the
// training split and keeps the one with the lower score. The learning rate
// decays after every generation.
package trainer
