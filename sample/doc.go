// Package sample subsamples a text file by keeping every Nth line.
//
// Lines are counted from zero; the line at index i is kept when i is a
// multiple of the stride N. Kept lines are copied byte for byte, including
// their original terminator, so N = 1 reproduces the input exactly.
//
//	err := sample.EveryNth("access.log", "access.sampled.log", 4)
//
// A stride below 1 is rejected with lineio.ErrInvalidArgument before any
// file is opened.
package sample
