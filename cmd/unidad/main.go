// Command unidad is a small demonstration harness for the unit-aware
// value and arithmetic core in internal/value and internal/units. It is
// not a language front end: there is no lexer, parser, or compiler
// here, only enough wiring to run the fixed scenarios this core is
// built to satisfy and to inspect the module registry a real front end
// would populate.
package main

import (
	"fmt"
	"os"

	unidaderrors "unidad/internal/errors"
	"unidad/internal/module"
)

const version = "0.1.0"

// commandAliases mirrors the short-flag convenience aliases the
// teacher's CLI offers for its own subcommands, scaled down to the
// handful this harness actually has.
var commandAliases = map[string]string{
	"d": "demo",
	"m": "modules",
	"v": "version",
	"s": "serve",
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		showUsage()
		return
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}

	switch cmd {
	case "--help", "-h", "help":
		showUsage()
	case "--version", "-version", "version":
		fmt.Printf("unidad %s\n", version)
	case "demo":
		runDemo(os.Stdout)
	case "fail":
		runFailDemo()
	case "serve":
		addr := ":8080"
		if len(args) > 1 {
			addr = args[1]
		}
		runServe(addr)
	case "modules":
		if err := runModules(args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "unidad: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unidad: unknown command %q\n", args[0])
		showUsage()
		os.Exit(1)
	}
}

// runModules registers any source files named on the command line into
// a fresh registry and prints its Stats summary, demonstrating the
// diagnostics-facing half of internal/module without a real front end
// to drive it.
func runModules(paths []string) error {
	reg := module.NewRegistry()
	if len(paths) == 0 {
		fmt.Print(reg.Stats())
		return nil
	}

	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return unidaderrors.Wrapf(unidaderrors.ModuleError, err, "reading %s", path)
		}
		reg.Register(path, string(src))
	}
	fmt.Print(reg.Stats())
	return nil
}

func showUsage() {
	fmt.Println(`unidad - dimensioned value core demonstration harness

Usage:
  unidad demo              run the fixed end-to-end scenarios
  unidad fail              trigger the out-of-range index fault (exits 1)
  unidad serve [addr]      stream fault reports over a websocket (default :8080)
  unidad modules [file...] register files and print the module registry summary
  unidad version           print the build version`)
}
