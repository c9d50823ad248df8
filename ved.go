//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/vedit/ved/commander"
	"github.com/vedit/ved/editor"
	"github.com/vedit/ved/screen"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file>\n", os.Args[0])
		os.Exit(1)
	}
	filename := os.Args[1]

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "ved: standard output is not a terminal")
		os.Exit(1)
	}

	fileinfo, err := os.Stat(filename)
	if err == nil && fileinfo.IsDir() {
		fmt.Fprintf(os.Stderr, "ved: %s is a directory\n", filename)
		os.Exit(1)
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()

	// A file that doesn't exist yet starts as an empty buffer.
	if err := e.ReadFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "ved: %s\n", err.Error())
		os.Exit(1)
	}

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ved: %s\n", err.Error())
		os.Exit(1)
	}
	defer s.Close()

	// Open a log file so diagnostics don't corrupt the display.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.vedlog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Output(1, err.Error())
		}
	}
}
