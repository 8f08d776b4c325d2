package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maniartech/jsonvisit"
	"github.com/maniartech/jsonvisit/diag"
)

var (
	validateCmd = &cobra.Command{
		Use:   "validate <file...|->",
		Short: "Validate that each file is a well-formed JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New("at least one file argument is required")
			}

			var opts jsonvisit.Options
			if unchecked {
				opts |= jsonvisit.Unchecked
			}

			failed := false
			for _, name := range args {
				data, err := readInput(name)
				if err != nil {
					log.WithField("file", name).Error(err)
					failed = true
					continue
				}

				if perr := diag.Explain(data, opts, nil); perr != nil {
					log.WithFields(map[string]any{
						"file":   name,
						"code":   perr.Code,
						"offset": perr.Position.Offset,
						"row":    perr.Position.Row,
						"col":    perr.Position.Col,
					}).Warn(perr.Message)
					fmt.Printf("%s: %s\n", name, perr.Error())
					failed = true
					continue
				}

				if !quiet {
					log.WithField("file", name).Info("valid")
				}
			}

			if failed {
				return errors.New("one or more files failed validation")
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(validateCmd)
}
