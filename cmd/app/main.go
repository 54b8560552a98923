package main

import (
	"os"

	"github.com/gitsunil577/SafeHer-Backend/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
