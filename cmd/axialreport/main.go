package main

import (
	"os"

	"taggereval/internal/coding"
)

func main() {
	coding.WriteReport(os.Stdout)
}
