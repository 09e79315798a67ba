package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dfdl-go/runtime/scenario"
)

type selftestCmd struct {
	verbose bool
}

func (c *selftestCmd) Name() string { return "selftest" }

func (c *selftestCmd) DefineFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "v", false, "print every case, not just failures")
}

func (c *selftestCmd) Execute(args []string) int {
	suite, err := scenario.LoadBuiltinSeeds()
	if err != nil {
		fmt.Fprintln(os.Stderr, "daffodil selftest:", err)
		return exitProcessingErr
	}

	results := suite.Run()
	failed := 0
	for _, r := range results {
		if r.Pass {
			if c.verbose {
				fmt.Printf("ok   %s\n", r.Case.Name)
			}
			continue
		}
		failed++
		fmt.Printf("FAIL %s: %s\n", r.Case.Name, r.Detail)
	}
	fmt.Printf("%d/%d scenarios passed\n", len(results)-failed, len(results))
	if failed > 0 {
		return exitProcessingErr
	}
	return exitSuccess
}
