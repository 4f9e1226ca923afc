package main

import "github.com/iliskimuhendisi/gamicipline/cmd/gami/root"

func main() {
	root.Execute()
}
