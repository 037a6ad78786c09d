package main

import "github.com/atikulmunna/depthtree/internal/cmd"

func main() {
	cmd.Execute()
}
