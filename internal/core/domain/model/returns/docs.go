// Package returns contains the Return aggregate.
//
// A return tracks goods sent back to a supplier or received back from a
// customer. Completing a return issues a credit note whose amount equals the
// return's total; the credit note itself lives in the creditnote package.
package returns
