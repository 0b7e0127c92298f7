package tmi

import "fmt"

// WrongCommand is returned by a typed projector when the view's classified
// Command does not match the message type being projected into.
type WrongCommand struct {
	Want CommandKind
	Got  Command
}

func (e *WrongCommand) Error() string {
	return fmt.Sprintf("tmi: wrong command: want %s, got %s", e.Want, e.Got.Kind)
}

// MissingRequired is returned when a field the target message type treats
// as mandatory (a param, the trailing text, or a tag) is absent from the
// line.
type MissingRequired struct {
	Message string // target message type name, e.g. "Privmsg"
	Field   string
}

func (e *MissingRequired) Error() string {
	return fmt.Sprintf("tmi: %s: missing required field %q", e.Message, e.Field)
}

// BadTagValue is returned when a tag is present but its value does not
// decode per its documented grammar (e.g. a non-numeric tmi-sent-ts).
type BadTagValue struct {
	Message string
	Tag     string
	Value   []byte
}

func (e *BadTagValue) Error() string {
	return fmt.Sprintf("tmi: %s: bad value for tag %q: %q", e.Message, e.Tag, e.Value)
}
