//go:build !ebiten

package main

import "log"

func main() {
	log.SetFlags(0)
	log.Fatal("life: this binary was built without the ebiten tag; rebuild with `go build -tags ebiten ./cmd/life` or use ./cmd/life-term")
}
