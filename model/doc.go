// Package model defines the trained-weight blob contract the LSTM word
// boundary detector consumes, and a loader for a concrete on-disk
// representation of it.
//
// The blob itself — the four per-script weight sets for Thai, Lao, Burmese
// and Khmer — is produced by an offline training pipeline and is treated as
// an external, read-only collaborator: this package only defines its shape
// and how to get one into memory, it never trains or mutates one.
package model
