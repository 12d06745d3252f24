package main

import (
	"log"

	"github.com/NVIDIA/semver/pkg/server"
)

func main() {
	if err := server.Run(); err != nil {
		log.Fatal(err)
	}
}
