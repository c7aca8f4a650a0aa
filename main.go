package main

import "github.com/alexiusacademia/gosmd/cmd"

func main() {
	cmd.Execute()
}
