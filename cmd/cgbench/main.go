// Command cgbench measures class group arithmetic and delay evaluation
// for the known discriminant sizes or a user supplied discriminant.
package main

import "github.com/f3rmion/vdf/cmd/cgbench/cmd"

func main() {
	cmd.Execute()
}
