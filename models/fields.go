package models

import "encoding/json"

// FlexString accepts a JSON string, number, or null and keeps the raw
// text. Form-driven clients send numeric fields either way, so percent
// and budget are validated from their textual form.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	*f = FlexString(data)
	return nil
}

func (f FlexString) String() string {
	return string(f)
}
