package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nakamurakj/bean-validation/cmd/beancheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, cmd.ErrViolations) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "beancheck: %v\n", err)
		os.Exit(2)
	}
}
