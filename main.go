package main

import "github.com/chrisdamba/menucraft/cmd"

func main() {
	cmd.Execute()
}
