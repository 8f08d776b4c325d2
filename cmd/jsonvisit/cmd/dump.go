package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/maniartech/jsonvisit"
	"github.com/maniartech/jsonvisit/utils"
)

var (
	pretty bool
	asRepr bool

	dumpCmd = &cobra.Command{
		Use:   "dump <file|->",
		Short: "Print the full event trace jsonvisit.Parse reports for a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("exactly one file argument is required")
			}

			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			var opts jsonvisit.Options
			if unchecked {
				opts |= jsonvisit.Unchecked
			}

			if !cmd.Flags().Changed("pretty") && term.IsTerminal(int(os.Stdout.Fd())) {
				pretty = true
			}

			var c jsonvisit.Collector
			n := jsonvisit.Parse(data, opts, c.Visit)

			switch {
			case asRepr:
				fmt.Println(utils.ReprEvents(c.Events))
			case pretty:
				utils.PrettyPrintEvents(c.Events)
			default:
				for _, e := range c.Events {
					utils.DumpEvent(data, e)
				}
			}

			if n <= 0 {
				return errors.New("document is malformed; trace above covers only the part that parsed")
			}
			return nil
		},
	}
)

func init() {
	dumpCmd.Flags().BoolVar(&pretty, "pretty", false, "use k0kubun/pp colorized struct output")
	dumpCmd.Flags().BoolVar(&asRepr, "repr", false, "render events as Go-literal syntax")
	rootCmd.AddCommand(dumpCmd)
}
