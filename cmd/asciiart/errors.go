package main

import (
	"errors"
	"fmt"

	"github.com/wbrown/img2ascii"
)

var (
	// ErrFormat marks a command whose arguments could not be parsed.
	ErrFormat = errors.New("incorrect format")
	// ErrResolutionBounds is returned when a resolution change would leave
	// the bounds of the loaded image.
	ErrResolutionBounds = errors.New("resolution out of bounds")
	// ErrMinCharset is returned when asciiArt runs with too few glyphs.
	ErrMinCharset = errors.New("charset too small")
	// ErrImagePath is returned when an image cannot be loaded, or none is.
	ErrImagePath = errors.New("cannot load image")

	errUnknownCommand = errors.New("unknown command")
)

// formatError records which command rejected its arguments.
type formatError struct {
	command string
}

func (e *formatError) Error() string {
	return fmt.Sprintf("%s: %v", e.command, ErrFormat)
}

func (e *formatError) Unwrap() error {
	return ErrFormat
}

func newFormatError(command string) error {
	return &formatError{command: command}
}

// userMessage turns a command error into the line shown at the prompt.
func userMessage(err error) string {
	var fe *formatError
	switch {
	case errors.As(err, &fe):
		switch fe.command {
		case cmdAdd:
			return "Did not add due to incorrect format."
		case cmdRemove:
			return "Did not remove due to incorrect format."
		case cmdRes:
			return "Did not change resolution due to incorrect format."
		case cmdImage:
			return "Did not change image method due to incorrect format."
		case cmdOutput:
			return "Did not change output method due to incorrect format."
		}
		return "Unknown command format error."
	case errors.Is(err, errUnknownCommand):
		return "Did not execute due to incorrect command."
	case errors.Is(err, ErrResolutionBounds):
		return "Did not change resolution due to exceeding boundaries."
	case errors.Is(err, ErrMinCharset):
		return "Did not execute. Charset is too small."
	case errors.Is(err, ErrImagePath):
		return "Did not execute due to problem with image file."
	case errors.Is(err, img2ascii.ErrUnknownGlyph):
		return "Did not add because the font cannot draw that character."
	}
	return fmt.Sprintf("Did not execute: %v.", err)
}
