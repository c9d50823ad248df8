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
	ved "github.com/vedit/ved/types"
)

// The Commander converts user input into commands for the Editor. It is
// a three-state machine over Normal, Insert, and Command modes; the
// pseudo-mode ModeQuit stops the event loop. The commander is the only
// component that mutates the editor.
type Commander struct {
	editor  ved.Editor
	mode    int    // editor mode
	command string // command as it is being typed on the command line
	message string // status message
}

func NewCommander(e ved.Editor) *Commander {
	return &Commander{editor: e, mode: ved.ModeNormal}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != ved.ModeQuit
}

func (c *Commander) ProcessEvent(event *ved.Event) error {
	switch event.Type {
	case ved.EventKey:
		return c.ProcessKey(event)
	case ved.EventResize:
		return c.processResize(event)
	default:
		return nil
	}
}

func (c *Commander) processResize(event *ved.Event) error {
	return nil
}

func (c *Commander) ProcessKey(event *ved.Event) error {
	switch c.mode {
	case ved.ModeNormal:
		return c.processKeyNormalMode(event)
	case ved.ModeInsert:
		return c.processKeyInsertMode(event)
	case ved.ModeCommand:
		return c.processKeyCommandMode(event)
	}
	return nil
}

func (c *Commander) processKeyNormalMode(event *ved.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case ved.KeyArrowUp:
			e.MoveCursor(ved.MoveUp)
		case ved.KeyArrowDown:
			e.MoveCursor(ved.MoveDown)
		case ved.KeyArrowLeft:
			e.MoveCursor(ved.MoveLeft)
		case ved.KeyArrowRight:
			e.MoveCursor(ved.MoveRight)
		}
	}
	if ch != 0 {
		switch ch {
		case 'i':
			c.mode = ved.ModeInsert
		case ':':
			c.mode = ved.ModeCommand
			c.command = ""
			c.message = ""
		case 'q':
			c.mode = ved.ModeQuit
		}
	}
	return nil
}

func (c *Commander) processKeyInsertMode(event *ved.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case ved.KeyEsc:
			c.mode = ved.ModeNormal
		case ved.KeyBackspace:
			e.BackspaceChar()
		case ved.KeyEnter:
			e.InsertNewline()
		case ved.KeySpace:
			e.InsertChar(' ')
		case ved.KeyTab:
			e.InsertChar(' ')
			for e.GetCursor().Col%8 != 0 {
				e.InsertChar(' ')
			}
		case ved.KeyArrowUp:
			e.MoveCursor(ved.MoveUp)
		case ved.KeyArrowDown:
			e.MoveCursor(ved.MoveDown)
		case ved.KeyArrowLeft:
			e.MoveCursor(ved.MoveLeft)
		case ved.KeyArrowRight:
			e.MoveCursor(ved.MoveRight)
		}
	}
	if ch != 0 {
		e.InsertChar(ch)
	}
	return nil
}

func (c *Commander) processKeyCommandMode(event *ved.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case ved.KeyEsc:
			c.command = ""
			c.mode = ved.ModeNormal
		case ved.KeyEnter:
			c.PerformCommand()
		case ved.KeyBackspace:
			if len(c.command) > 0 {
				c.command = c.command[0 : len(c.command)-1]
			}
		case ved.KeySpace:
			c.command += " "
		}
	}
	if ch != 0 {
		c.command = c.command + string(ch)
	}
	return nil
}

// PerformCommand executes the typed command line. Recognized commands
// are "w" (save), "q" (quit, unconditionally), and "wq" (save, then
// quit only if the save succeeded). Anything else is ignored with a
// status message. The command line is cleared on every path.
func (c *Commander) PerformCommand() {
	e := c.editor

	switch c.command {
	case "w":
		if err := e.WriteFile(e.FileName()); err != nil {
			c.message = err.Error()
		} else {
			c.message = "File saved"
		}
	case "q":
		c.command = ""
		c.mode = ved.ModeQuit
		return
	case "wq":
		if err := e.WriteFile(e.FileName()); err != nil {
			// a failed save aborts the quit; nothing is lost
			c.message = err.Error()
			break
		}
		c.command = ""
		c.mode = ved.ModeQuit
		return
	case "":
		break
	default:
		c.message = "Invalid command"
	}
	c.command = ""
	c.mode = ved.ModeNormal
}

func (c *Commander) GetCommand() string {
	return c.command
}

func (c *Commander) GetMessage() string {
	return c.message
}
