package server

import (
	petname "github.com/dustinkirkland/golang-petname"
)

// Each upload gets a readable name for its log lines. The names are
// nondeterministic on purpose, as a reminder that they don't identify
// anything between runs.
func init() {
	petname.NonDeterministicMode()
}

func newJobName() string {
	return petname.Generate(2, "-")
}
