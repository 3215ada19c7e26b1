package history

import (
	"encoding/json"
	"errors"
)

// Entry is one scheduled message.
type Entry struct {
	Date Date   `json:"date"`
	Text string `json:"text"`
}

// UnmarshalJSON requires both fields to be present.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Date *Date   `json:"date"`
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Date == nil {
		return errors.New("entry is missing \"date\"")
	}
	if raw.Text == nil {
		return errors.New("entry is missing \"text\"")
	}
	e.Date = *raw.Date
	e.Text = *raw.Text
	return nil
}
