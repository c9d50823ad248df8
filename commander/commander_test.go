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
package commander

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vedit/ved/editor"
	ved "github.com/vedit/ved/types"
)

func keyEvent(k ved.Key) *ved.Event {
	return &ved.Event{Type: ved.EventKey, Key: k}
}

func chEvent(c rune) *ved.Event {
	return &ved.Event{Type: ved.EventKey, Ch: c}
}

func feed(t *testing.T, c *Commander, events ...*ved.Event) {
	t.Helper()
	for _, event := range events {
		if err := c.ProcessEvent(event); err != nil {
			t.Fatalf("event processing failed: %+v", err)
		}
	}
}

func typeString(t *testing.T, c *Commander, s string) {
	t.Helper()
	for _, ch := range s {
		if ch == ' ' {
			feed(t, c, keyEvent(ved.KeySpace))
		} else {
			feed(t, c, chEvent(ch))
		}
	}
}

// setup builds an editor bound to a file under a test temp directory.
func setup(t *testing.T, content string) (*editor.Editor, *Commander, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.txt")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write failed: %+v", err)
		}
	}
	e := editor.NewEditor()
	if err := e.ReadFile(path); err != nil {
		t.Fatalf("read failed: %+v", err)
	}
	return e, NewCommander(e), path
}

func TestInitialMode(t *testing.T) {
	_, c, _ := setup(t, "")
	if c.GetMode() != ved.ModeNormal {
		t.Errorf("initial mode is %d, expected Normal", c.GetMode())
	}
	if !c.IsRunning() {
		t.Errorf("commander should start running")
	}
}

func TestModeTransitions(t *testing.T) {
	_, c, _ := setup(t, "")

	feed(t, c, chEvent('i'))
	if c.GetMode() != ved.ModeInsert {
		t.Errorf("'i' should enter Insert mode, got %d", c.GetMode())
	}
	feed(t, c, keyEvent(ved.KeyEsc))
	if c.GetMode() != ved.ModeNormal {
		t.Errorf("Esc should return to Normal mode, got %d", c.GetMode())
	}
	feed(t, c, chEvent(':'))
	if c.GetMode() != ved.ModeCommand {
		t.Errorf("':' should enter Command mode, got %d", c.GetMode())
	}
	if c.GetCommand() != "" {
		t.Errorf("command line should be empty on entry, got %q", c.GetCommand())
	}
	typeString(t, c, "xyz")
	feed(t, c, keyEvent(ved.KeyEsc))
	if c.GetMode() != ved.ModeNormal {
		t.Errorf("Esc should leave Command mode, got %d", c.GetMode())
	}
	if c.GetCommand() != "" {
		t.Errorf("Esc should clear the command line, got %q", c.GetCommand())
	}
}

func TestNormalModeIgnoresOtherKeys(t *testing.T) {
	e, c, _ := setup(t, "abc")
	feed(t, c, chEvent('x'), chEvent('Z'), keyEvent(ved.KeyEnter), keyEvent(ved.KeyUnsupported))
	if c.GetMode() != ved.ModeNormal {
		t.Errorf("unhandled keys changed the mode to %d", c.GetMode())
	}
	if got := string(e.Bytes()); got != "abc" {
		t.Errorf("unhandled keys changed the buffer to %q", got)
	}
}

func TestArrowKeysMoveCursor(t *testing.T) {
	e, c, _ := setup(t, "abc\ndef")
	feed(t, c, keyEvent(ved.KeyArrowRight), keyEvent(ved.KeyArrowDown))
	if e.GetCursor() != (ved.Point{Row: 1, Col: 1}) {
		t.Errorf("cursor is %+v, expected 1,1", e.GetCursor())
	}
	// arrows also work in insert mode
	feed(t, c, chEvent('i'), keyEvent(ved.KeyArrowLeft), keyEvent(ved.KeyArrowUp))
	if e.GetCursor() != (ved.Point{Row: 0, Col: 0}) {
		t.Errorf("cursor is %+v, expected 0,0", e.GetCursor())
	}
}

func TestInsertTyping(t *testing.T) {
	e, c, _ := setup(t, "")
	feed(t, c, chEvent('i'))
	typeString(t, c, "hello world")
	feed(t, c, keyEvent(ved.KeyEnter))
	typeString(t, c, "bye")
	feed(t, c, keyEvent(ved.KeyBackspace))
	feed(t, c, keyEvent(ved.KeyEsc))

	want := []string{"hello world", "by"}
	got := strings.Split(string(e.Bytes()), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected lines (-want +got):\n%s", diff)
	}
	if c.GetMode() != ved.ModeNormal {
		t.Errorf("mode is %d, expected Normal", c.GetMode())
	}
}

func TestInsertTab(t *testing.T) {
	e, c, _ := setup(t, "")
	feed(t, c, chEvent('i'), chEvent('a'), keyEvent(ved.KeyTab))
	if got := string(e.Bytes()); got != "a       " {
		t.Errorf("tab should pad to the next tab stop, got %q", got)
	}
	if e.GetCursor().Col != 8 {
		t.Errorf("cursor col is %d, expected 8", e.GetCursor().Col)
	}
}

func TestCommandWrite(t *testing.T) {
	_, c, path := setup(t, "")
	feed(t, c, chEvent('i'))
	typeString(t, c, "saved text")
	feed(t, c, keyEvent(ved.KeyEsc), chEvent(':'))
	typeString(t, c, "w")
	feed(t, c, keyEvent(ved.KeyEnter))

	if c.GetMode() != ved.ModeNormal {
		t.Errorf("mode is %d, expected Normal after :w", c.GetMode())
	}
	if !c.IsRunning() {
		t.Errorf(":w should not quit")
	}
	if c.GetMessage() != "File saved" {
		t.Errorf("message is %q, expected %q", c.GetMessage(), "File saved")
	}
	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reread failed: %+v", err)
	}
	if diff := cmp.Diff("saved text", string(written)); diff != "" {
		t.Errorf("unexpected file content (-want +got):\n%s", diff)
	}
}

func TestCommandWriteQuit(t *testing.T) {
	_, c, path := setup(t, "keep me")
	feed(t, c, chEvent(':'))
	typeString(t, c, "wq")
	if c.GetCommand() != "wq" {
		t.Errorf("command line is %q, expected %q", c.GetCommand(), "wq")
	}
	feed(t, c, keyEvent(ved.KeyEnter))
	if c.IsRunning() {
		t.Errorf(":wq should quit after a successful save")
	}
	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reread failed: %+v", err)
	}
	if string(written) != "keep me" {
		t.Errorf("unexpected file content: %q", written)
	}
}

func TestCommandQuitUnconditional(t *testing.T) {
	_, c, path := setup(t, "")
	// unsaved edits do not block :q
	feed(t, c, chEvent('i'), chEvent('x'), keyEvent(ved.KeyEsc), chEvent(':'))
	typeString(t, c, "q")
	feed(t, c, keyEvent(ved.KeyEnter))
	if c.IsRunning() {
		t.Errorf(":q should quit")
	}
	if _, err := os.Stat(path); err == nil {
		t.Errorf(":q should not write the file")
	}
}

func TestQuitKeyInNormalMode(t *testing.T) {
	_, c, _ := setup(t, "")
	feed(t, c, chEvent('q'))
	if c.IsRunning() {
		t.Errorf("'q' in Normal mode should quit")
	}
}

func TestQuitKeyInsertsInInsertMode(t *testing.T) {
	e, c, _ := setup(t, "")
	feed(t, c, chEvent('i'), chEvent('q'))
	if !c.IsRunning() {
		t.Errorf("'q' in Insert mode should not quit")
	}
	if got := string(e.Bytes()); got != "q" {
		t.Errorf("'q' in Insert mode should insert, got %q", got)
	}
}

func TestUnrecognizedCommand(t *testing.T) {
	_, c, path := setup(t, "")
	feed(t, c, chEvent(':'))
	typeString(t, c, "xyz")
	feed(t, c, keyEvent(ved.KeyEnter))
	if !c.IsRunning() {
		t.Errorf("unrecognized command should not quit")
	}
	if c.GetMode() != ved.ModeNormal {
		t.Errorf("mode is %d, expected Normal", c.GetMode())
	}
	if c.GetCommand() != "" {
		t.Errorf("command line should be cleared, got %q", c.GetCommand())
	}
	if c.GetMessage() != "Invalid command" {
		t.Errorf("message is %q, expected %q", c.GetMessage(), "Invalid command")
	}
	if _, err := os.Stat(path); err == nil {
		t.Errorf("unrecognized command should not write the file")
	}
}

func TestCommandBackspace(t *testing.T) {
	_, c, _ := setup(t, "")
	feed(t, c, chEvent(':'))
	typeString(t, c, "wq")
	feed(t, c, keyEvent(ved.KeyBackspace))
	if c.GetCommand() != "w" {
		t.Errorf("command line is %q, expected %q", c.GetCommand(), "w")
	}
}

func TestSaveFailureAbortsQuit(t *testing.T) {
	// a file path under a directory that doesn't exist can be loaded
	// (as a new empty buffer) but not saved
	path := filepath.Join(t.TempDir(), "missing", "test.txt")
	e := editor.NewEditor()
	if err := e.ReadFile(path); err != nil {
		t.Fatalf("read failed: %+v", err)
	}
	c := NewCommander(e)

	feed(t, c, chEvent('i'))
	typeString(t, c, "precious")
	feed(t, c, keyEvent(ved.KeyEsc), chEvent(':'))
	typeString(t, c, "wq")
	feed(t, c, keyEvent(ved.KeyEnter))

	if !c.IsRunning() {
		t.Errorf("a failed save must abort the quit")
	}
	if c.GetMode() != ved.ModeNormal {
		t.Errorf("mode is %d, expected Normal after failed save", c.GetMode())
	}
	if c.GetMessage() == "" {
		t.Errorf("failed save should surface a message")
	}
	if got := string(e.Bytes()); got != "precious" {
		t.Errorf("failed save changed the buffer to %q", got)
	}
}

func TestBareWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "test.txt")
	e := editor.NewEditor()
	if err := e.ReadFile(path); err != nil {
		t.Fatalf("read failed: %+v", err)
	}
	c := NewCommander(e)

	feed(t, c, chEvent(':'))
	typeString(t, c, "w")
	feed(t, c, keyEvent(ved.KeyEnter))
	if !c.IsRunning() {
		t.Errorf("a failed :w must not quit")
	}
	if c.GetMode() != ved.ModeNormal {
		t.Errorf("mode is %d, expected Normal", c.GetMode())
	}
	if c.GetMessage() == "" {
		t.Errorf("failed save should surface a message")
	}
}

func TestResizeEventIgnored(t *testing.T) {
	e, c, _ := setup(t, "abc")
	feed(t, c, &ved.Event{Type: ved.EventResize})
	if c.GetMode() != ved.ModeNormal || string(e.Bytes()) != "abc" {
		t.Errorf("resize events should not change editor state")
	}
}
