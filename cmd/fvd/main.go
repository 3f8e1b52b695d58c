package main

import (
	"log"

	"github.com/NVIDIA/fast-version/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
