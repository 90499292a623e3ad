package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errNotScalar = errors.New("value must be a string, number or boolean")

// UnmarshalJSON принимает username строкой или числом.
func (r *CreateUserRequest) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}
	r.Username, err = scalarText("username", fields["username"])
	return err
}

// UnmarshalJSON принимает скалярные поля строкой или числом. Отсутствующие поля и null остаются nil.
func (r *CreateExerciseRequest) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}
	if r.Description, err = optionalScalar("description", fields); err != nil {
		return err
	}
	if r.Duration, err = optionalScalar("duration", fields); err != nil {
		return err
	}
	r.Date, err = optionalScalar("date", fields)
	return err
}

func optionalScalar(name string, fields map[string]json.RawMessage) (*string, error) {
	raw, ok := fields[name]
	if !ok || isNull(raw) {
		return nil, nil
	}
	text, err := scalarText(name, raw)
	if err != nil {
		return nil, err
	}
	return &text, nil
}

func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func scalarText(name string, raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || isNull(raw) {
		return "", nil
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("%s: %w", name, err)
		}
		return s, nil
	case '{', '[':
		return "", fmt.Errorf("%s: %w", name, errNotScalar)
	default:
		return string(raw), nil
	}
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
