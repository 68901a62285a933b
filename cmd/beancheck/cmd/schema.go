package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/nakamurakj/bean-validation/pkg/beanvalidator/schema"
	"github.com/nakamurakj/bean-validation/internal/document"
)

var schemaType string

var schemaCmd = &cobra.Command{
	Use:   "schema FILE",
	Short: "Print the JSON Schema of the types declared in a YAML document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		doc, err := document.Parse(f)
		if err != nil {
			return err
		}
		decls, err := doc.Declarations()
		if err != nil {
			return err
		}

		var out any
		if schemaType != "" {
			cs, ok := decls[schemaType]
			if !ok {
				return fmt.Errorf("%w %q", document.ErrUnknownType, schemaType)
			}
			out = schema.ForConstraints(schemaType, cs)
		} else {
			defs := make(jsonschema.Definitions, len(decls))
			for name, cs := range decls {
				defs[name] = schema.ForConstraints(name, cs)
			}
			out = &jsonschema.Schema{Definitions: defs}
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	schemaCmd.Flags().StringVar(&schemaType, "type", "", "print only this type")
	rootCmd.AddCommand(schemaCmd)
}
