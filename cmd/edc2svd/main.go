package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"omibyte.io/edc2svd/edc"
	"omibyte.io/edc2svd/generator"
)

var (
	convertOpts = struct {
		verbose       bool
		peripheralMap string
	}{}

	rootCmd = &cobra.Command{
		Use:   "edc2svd <input.edc> <output.svd>",
		Short: "Convert an MCU register description from the EDC format to the SVD format",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			convert(args[0], args[1])
		},
	}
)

func init() {
	rootCmd.Flags().BoolVarP(&convertOpts.verbose, "verbose", "v", false, "activate verbose output")
	rootCmd.Flags().StringVar(&convertOpts.peripheralMap, "peripheral-map", "",
		"YAML file mapping additional _modsrc identifiers to peripheral labels")
}

func convert(edcPath, svdPath string) {
	opts := generator.Options{
		Trace: log.New(io.Discard, "", 0),
	}
	if convertOpts.verbose {
		opts.Trace = log.New(os.Stdout, "", 0)
	}

	if len(convertOpts.peripheralMap) > 0 {
		buf, err := os.ReadFile(convertOpts.peripheralMap)
		if err != nil {
			log.Fatal("file io error: ", err)
		}
		if err = yaml.Unmarshal(buf, &opts.ModuleMap); err != nil {
			log.Fatalf("%s: yaml decode error: %v", convertOpts.peripheralMap, err)
		}
	}

	// Read the input document
	file, err := os.Open(edcPath)
	if err != nil {
		log.Fatal("file io error: ", err)
	}
	doc, err := edc.Decode(file)
	if err != nil {
		log.Fatalf("%s: xml decode error: %v", edcPath, err)
	}
	if err = file.Close(); err != nil {
		log.Fatal("file io error: ", err)
	}

	// Convert and write the output document
	out, err := os.Create(svdPath)
	if err != nil {
		log.Fatal("file io error: ", err)
	}
	gen := generator.NewGenerator(doc, opts)
	if err = gen.Generate(out); err != nil {
		out.Close()
		log.Fatal("conversion error: ", err)
	}
	if err = out.Close(); err != nil {
		log.Fatal("file io error: ", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
