package main

import "testing"

func TestRun(t *testing.T) {
	run(1, 2, 8)
}
