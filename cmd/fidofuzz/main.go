// fidofuzz -- structure-aware fuzzing harness for FIDO2/U2F assertion
// verification.
package main

import "github.com/dantte-lp/fidofuzz/cmd/fidofuzz/commands"

func main() {
	commands.Execute()
}
