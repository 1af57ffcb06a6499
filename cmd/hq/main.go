package main

import "github.com/Satvik374/success-habit-tracker/cmd/hq/root"

func main() {
	root.Execute()
}
