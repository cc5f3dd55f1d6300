package customer

import (
	"encoding/json"
	"fmt"
)

// InvalidArgumentErr is raised when a required string parameter carries no
// usable content (empty after trimming).
type InvalidArgumentErr struct {
	target  string
	message string
}

func (e *InvalidArgumentErr) Error() string {
	return e.message
}

func (e *InvalidArgumentErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

func NewInvalidArgumentErr(target string, msg string) *InvalidArgumentErr {
	return &InvalidArgumentErr{
		target:  target,
		message: msg,
	}
}

// IndexOutOfRangeErr is raised when a contact position lies outside the
// valid range [0, size).
type IndexOutOfRangeErr struct {
	index int
	size  int
}

func (e *IndexOutOfRangeErr) Error() string {
	return fmt.Sprintf("index %d is out of range [0, %d)", e.index, e.size)
}

func NewIndexOutOfRangeErr(index int, size int) *IndexOutOfRangeErr {
	return &IndexOutOfRangeErr{index: index, size: size}
}
