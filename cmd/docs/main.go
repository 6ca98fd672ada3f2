package main

import "github.com/graeme-hill/calcstuff-go/lib"

func main() {
	err := lib.WriteDocs("./test/definitions", "./test/reference.md")
	if err != nil {
		panic(err)
	}
}
