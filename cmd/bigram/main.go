// Command bigram reads a newline-separated word list and prints the most
// frequent character bigrams as a table.
//
//	bigram --file names.txt --top 20
package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/scalargrad/bigram"
)

type bigramOpts struct {
	file  string
	top   int
	debug bool
}

var opt bigramOpts

var rootCmd = &cobra.Command{
	Use:     "bigram",
	Short:   "count character bigrams in a word list",
	Example: `bigram --file names.txt --top 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if opt.debug {
			logrus.SetLevel(logrus.DebugLevel)
		}

		f, err := os.Open(opt.file)
		if err != nil {
			return fmt.Errorf("open word list: %w", err)
		}
		defer f.Close()

		words, err := bigram.ReadWords(f)
		if err != nil {
			return err
		}
		logrus.Debugf("loaded %d words from %s", len(words), opt.file)
		logrus.Debugf("longest word: %s", bigram.Longest(words))

		table := bigram.Count(words)
		logrus.Debugf("distinct pairs: %d", len(table))

		out := tablewriter.NewWriter(os.Stdout)
		out.SetHeader([]string{"FIRST", "SECOND", "COUNT"})
		for _, e := range table.TopK(opt.top) {
			out.Append([]string{e.Pair.First, e.Pair.Second, fmt.Sprintf("%d", e.Count)})
		}
		out.Render()

		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&opt.file, "file", "f", "names.txt", "path to the newline-separated word list")
	rootCmd.Flags().IntVarP(&opt.top, "top", "t", 20, "number of pairs to print (0 prints all)")
	rootCmd.Flags().BoolVarP(&opt.debug, "debug", "d", false, "turn on debug logging")
	rootCmd.DisableAutoGenTag = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
