package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/fieberit/vcard2pdf/internal/vcard"
	"github.com/fieberit/vcard2pdf/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the parsed form of a vCard file as YAML",
	Long: `Inspect parses one .vcf file and prints the structured contact record
as YAML, without rendering a PDF. Useful for checking what the renderer
will see, especially TYPE parameter classification.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// cardView adds the photo size to the YAML dump; the raw photo bytes are
// excluded from serialization.
type cardView struct {
	types.Card `yaml:",inline"`
	PhotoBytes int `yaml:"photo_bytes,omitempty"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	card, err := vcard.ParseFile(args[0])
	if err != nil {
		return err
	}

	view := cardView{Card: *card, PhotoBytes: len(card.Photo)}
	data, err := yaml.Marshal(&view)
	if err != nil {
		return fmt.Errorf("marshaling card: %w", err)
	}

	fmt.Print(string(data))
	return nil
}
