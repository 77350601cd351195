// ====================================
// File: cmd/multihub/main.go
// ====================================
package main

import (
	"os"

	"github.com/rovshanmuradov/multihub-swap/cmd/multihub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
