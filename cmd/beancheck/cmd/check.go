package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	bv "github.com/nakamurakj/bean-validation/pkg/beanvalidator"
	"github.com/nakamurakj/bean-validation/internal/document"
	"github.com/nakamurakj/bean-validation/pkg/logger"
)

// ErrViolations is returned by check when any record violates a constraint.
var ErrViolations = errors.New("constraint violations found")

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Evaluate the records in YAML documents",
	Long: `Evaluate every record against the constraints declared for its type.
Each violation is printed as Type#field[message].

Exit status is 1 when a violation is found and 2 on any other error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print violations as JSON")
	rootCmd.AddCommand(checkCmd)
}

type violationOutput struct {
	File    string `json:"file"`
	Record  int    `json:"record"`
	Code    string `json:"code"`
	Type    string `json:"type"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	ev := bv.NewEvaluator(bv.WithLogger(log))
	var out []violationOutput
	for _, path := range args {
		results, err := checkFile(ev, path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		log.Info("checked file",
			logger.File(path),
			logger.Count(len(results)),
			"violations", document.Count(results))
		for _, r := range results {
			for _, v := range r.Violations {
				out = append(out, violationOutput{
					File:    path,
					Record:  r.Record,
					Code:    v.ErrorCode(),
					Type:    v.BeanType,
					Field:   v.Field,
					Message: v.Message,
				})
			}
		}
	}

	if err := printViolations(cmd.OutOrStdout(), out); err != nil {
		return err
	}
	if len(out) > 0 {
		return ErrViolations
	}
	return nil
}

func checkFile(ev *bv.Evaluator, path string) ([]document.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := document.Parse(f)
	if err != nil {
		return nil, err
	}
	return doc.Check(ev)
}

func printViolations(w io.Writer, out []violationOutput) error {
	if checkJSON {
		if out == nil {
			out = []violationOutput{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	for _, v := range out {
		if _, err := fmt.Fprintf(w, "%s:%d: %s#%s[%s]\n", v.File, v.Record, v.Type, v.Field, v.Message); err != nil {
			return err
		}
	}
	return nil
}
