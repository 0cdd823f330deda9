package entity

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnknownClinicName is displayed for a structured clinic that carries no name
const UnknownClinicName = "Unknown Clinic"

// ClinicKind tags which representation a Clinic holds
type ClinicKind int

const (
	ClinicPlain ClinicKind = iota
	ClinicStructured
)

// Clinic is either a plain name or a structured {name, address} pair.
// Both shapes are accepted from JSON, YAML and jsonb columns and written back unchanged.
type Clinic struct {
	kind    ClinicKind
	name    string
	address string
}

type structuredClinic struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
}

func PlainClinic(name string) Clinic {
	return Clinic{kind: ClinicPlain, name: name}
}

func StructuredClinic(name, address string) Clinic {
	return Clinic{kind: ClinicStructured, name: name, address: address}
}

func (c Clinic) Kind() ClinicKind {
	return c.kind
}

// Name returns the display name of the clinic
func (c Clinic) Name() string {
	if c.kind == ClinicStructured && c.name == "" {
		return UnknownClinicName
	}
	return c.name
}

// Address is empty for plain clinics
func (c Clinic) Address() string {
	return c.address
}

func (c Clinic) MarshalJSON() ([]byte, error) {
	if c.kind == ClinicStructured {
		return json.Marshal(structuredClinic{Name: c.name, Address: c.address})
	}
	return json.Marshal(c.name)
}

func (c *Clinic) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = Clinic{}
		return nil
	}

	if trimmed[0] == '"' {
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return err
		}
		*c = PlainClinic(name)
		return nil
	}

	var s structuredClinic
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return fmt.Errorf("clinic must be a string or {name, address} object: %w", err)
	}
	*c = StructuredClinic(s.Name, s.Address)
	return nil
}

func (c *Clinic) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!str":
			*c = PlainClinic(node.Value)
			return nil
		case "!!null":
			*c = Clinic{}
			return nil
		}
		return fmt.Errorf("clinic must be a string or {name, address} mapping, got %s at line %d", node.ShortTag(), node.Line)
	case yaml.MappingNode:
		var s structuredClinic
		if err := node.Decode(&s); err != nil {
			return err
		}
		*c = StructuredClinic(s.Name, s.Address)
		return nil
	default:
		return fmt.Errorf("clinic must be a string or {name, address} mapping, line %d", node.Line)
	}
}

// Value implements driver.Valuer, storing the clinic as jsonb
func (c Clinic) Value() (driver.Value, error) {
	b, err := c.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (c *Clinic) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*c = Clinic{}
		return nil
	case []byte:
		return c.UnmarshalJSON(v)
	case string:
		return c.UnmarshalJSON([]byte(v))
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal clinic value:", value))
	}
}
