package main

import "tend/cmd/tend/root"

func main() {
	root.Execute()
}
