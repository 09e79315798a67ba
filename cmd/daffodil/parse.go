package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	daffodil "github.com/dfdl-go/runtime"
	"github.com/dfdl-go/runtime/xmlio"
)

type parseCmd struct {
	schemaName string
	output     string
	format     string
}

func (c *parseCmd) Name() string { return "parse" }

func (c *parseCmd) DefineFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.schemaName, "schema", "", "seed schema to parse against: "+listSchemaNames())
	fs.StringVar(&c.output, "o", "", "output path (default stdout)")
	fs.StringVar(&c.format, "I", "xml", "infoset representation to write (only \"xml\" is supported)")
}

func (c *parseCmd) Execute(args []string) int {
	if c.schemaName == "" {
		fmt.Fprintln(os.Stderr, "daffodil parse: -schema is required")
		return exitUsageError
	}
	s, ok := schemas[c.schemaName]
	if !ok {
		fmt.Fprintf(os.Stderr, "daffodil parse: unknown schema %q (have: %s)\n", c.schemaName, listSchemaNames())
		return exitUsageError
	}
	if c.format != "xml" {
		fmt.Fprintf(os.Stderr, "daffodil parse: unsupported -I %q\n", c.format)
		return exitUsageError
	}

	in, closeIn, err := openInput(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "daffodil parse:", err)
		return exitUsageError
	}
	defer closeIn()

	out, closeOut, err := openOutput(c.output)
	if err != nil {
		fmt.Fprintln(os.Stderr, "daffodil parse:", err)
		return exitUsageError
	}
	defer closeOut()

	record := newParseable(s)
	diags, parseErr := daffodil.ParseData(in, record)
	if parseErr != nil {
		fmt.Fprintf(os.Stderr, "daffodil parse: %s: %s\n", parseErr.ErrorCode(), parseErr.Error())
		return exitProcessingErr
	}
	for _, d := range diags.Entries() {
		log.Printf("diagnostic: %s %s: %s", d.Kind, d.Field, d.Detail)
	}

	if err := xmlio.WriteInfoset(out, record); err != nil {
		fmt.Fprintln(os.Stderr, "daffodil parse:", err)
		return exitProcessingErr
	}
	return exitSuccess
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
