// Package squareroot provides a synthetic dataset for learning square roots.
// Inputs and labels are both scaled into [0, 1).
package squareroot
