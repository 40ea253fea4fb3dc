// Command run-single runs only the app loading suite in a visible browser window, which is
// convenient for watching the application start up while developing it.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/alessio/shellescape"
)

const harnessBinaryName = "smoke-tests"

// harnessArgs selects a single suite and shows the browser.
var harnessArgs = []string{"-run", "^app loading", "-headed"}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// findHarness prefers a harness binary installed next to this one, and otherwise looks in PATH.
func findHarness() (string, error) {
	if self, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(self), harnessBinaryName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return exec.LookPath(harnessBinaryName)
}

func main() {
	fmt.Println("Starting smoke test for app loading...")
	fmt.Println("Make sure the application is running on http://localhost:3000")
	fmt.Println()

	bin, err := findHarness()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	var cmdLine commandBuilder
	cmdLine.add(bin)
	cmdLine.add(harnessArgs...)
	fmt.Println(cmdLine)
	fmt.Println("Test is running... This may take a few minutes.")

	cmd := exec.Command(bin, harnessArgs...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
