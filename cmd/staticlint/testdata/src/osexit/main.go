package main

import (
	"fmt"
	"os"
)

func exitLater() {
	os.Exit(2)
}

func main() {
	fmt.Println("start")
	defer exitLater()
	os.Exit(1) // want "direct call to os.Exit in main function"
}
