package config

import "errors"

// StringArray is a []string that can be unmarshaled from either a single
// YAML scalar or a list of scalars:
//
//	imports: schemas
//	imports: [schemas, vendor/schemas]
type StringArray []string

// UnmarshalYAML implements yaml.Unmarshaler for StringArray.
func (s *StringArray) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*s = []string{single}
		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		*s = multi
		return nil
	}

	return errors.New("expected string or list of strings")
}
