/*
	Copyright 2025 Markus Papenbrock
*/

package main

import "github.com/mpapenbr/f1analysis-go/cmd"

func main() {
	cmd.Execute()
}
