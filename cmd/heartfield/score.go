package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/vitapredict/heart/risk"
)

func (a *app) scoreCommand() *cobra.Command {
	var (
		asJSON bool
		lang   string
	)
	cmd := &cobra.Command{
		Use:   "score <model> [payload.json|-]",
		Short: "Score a health risk model from a JSON payload",
		Long: `Score reads a JSON payload from a file, or stdin when the path is "-" or
missing, and prints the model's risk estimate.

Models: cardiovascular, diabetes, heart-disease, obesity.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := risk.ParseModel(args[0])
			if err != nil {
				return err
			}
			path := "-"
			if len(args) == 2 {
				path = args[1]
			}
			data, err := readPayload(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			res, err := risk.Score(m, data)
			if err != nil {
				return err
			}
			a.logger.Debug("scored", "model", m, "level", res.Level, "probability", res.Probability)

			out := cmd.OutOrStdout()
			if asJSON {
				b, err := risk.MarshalResult(res)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "%s\n", b)
				return err
			}
			tag, err := language.Parse(lang)
			if err != nil {
				return fmt.Errorf("score: language %q: %w", lang, err)
			}
			return risk.WriteReport(out, tag, m, res)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().StringVar(&lang, "lang", "en", "language tag for number formatting")
	return cmd
}

func readPayload(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("score: read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("score: %w", err)
	}
	return b, nil
}
