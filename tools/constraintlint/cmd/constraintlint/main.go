package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/nakamurakj/bean-validation/tools/constraintlint"
)

func main() {
	singlechecker.Main(constraintlint.Analyzer)
}
