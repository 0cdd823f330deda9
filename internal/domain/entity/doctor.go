package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
)

// ConsultationMode is one of the supported ways to consult a doctor
type ConsultationMode string

const (
	ModeVideoConsult ConsultationMode = "Video Consult"
	ModeInClinic     ConsultationMode = "In Clinic"
)

// ConsultationModes lists every supported mode
var ConsultationModes = []ConsultationMode{ModeVideoConsult, ModeInClinic}

// IsKnown reports whether m belongs to the supported enumeration
func (m ConsultationMode) IsKnown() bool {
	return m == ModeVideoConsult || m == ModeInClinic
}

// Display fallbacks used when a record leaves an optional field empty
const (
	DefaultSpecialty     = "General Physician"
	DefaultQualification = "MBBS"
	DefaultAvatarColor   = "#3b82f6"
	doctorPrefix         = "Dr."
)

var avatarPalette = []string{
	"#4f46e5", // indigo-600
	"#2563eb", // blue-600
	"#0891b2", // cyan-600
	"#0d9488", // teal-600
	"#16a34a", // green-600
	"#ca8a04", // yellow-600
	"#ea580c", // orange-600
	"#dc2626", // red-600
	"#c026d3", // fuchsia-600
	"#9333ea", // purple-600
}

// Doctor represents one immutable entry of the record store
type Doctor struct {
	ID                int        `gorm:"primaryKey" json:"id" yaml:"id" validate:"gte=0"`
	Name              string     `gorm:"type:varchar(255);not null" json:"name" yaml:"name" validate:"required"`
	Specialties       StringList `gorm:"type:jsonb;not null" json:"specialties" yaml:"specialties" validate:"required,min=1,dive,required"`
	Qualification     string     `gorm:"type:varchar(255)" json:"qualification,omitempty" yaml:"qualification"`
	ExperienceYears   int        `gorm:"not null" json:"experience" yaml:"experience" validate:"gte=0"`
	Clinic            Clinic     `gorm:"type:jsonb" json:"clinic" yaml:"clinic"`
	Location          string     `gorm:"type:varchar(255)" json:"location" yaml:"location"`
	Fees              int        `gorm:"not null" json:"fees" yaml:"fees" validate:"gte=0"`
	ConsultationModes ModeList   `gorm:"type:jsonb;not null" json:"consultationModes" yaml:"consultationModes"`
	Image             string     `gorm:"type:varchar(255)" json:"image,omitempty" yaml:"image"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DisplayName prefixes the name with "Dr." unless it already carries it
func (d *Doctor) DisplayName() string {
	if strings.HasPrefix(d.Name, doctorPrefix) {
		return d.Name
	}
	return doctorPrefix + " " + d.Name
}

// PrimarySpecialty is the first listed specialty
func (d *Doctor) PrimarySpecialty() string {
	if len(d.Specialties) == 0 {
		return DefaultSpecialty
	}
	return d.Specialties[0]
}

// DisplayQualification is for display only and never takes part in filtering
func (d *Doctor) DisplayQualification() string {
	if d.Qualification == "" {
		return DefaultQualification
	}
	return d.Qualification
}

// SupportsMode checks if the doctor offers the given consultation mode
func (d *Doctor) SupportsMode(mode ConsultationMode) bool {
	for _, m := range d.ConsultationModes {
		if m == mode {
			return true
		}
	}
	return false
}

// HasSpecialty checks exact membership of a specialty label
func (d *Doctor) HasSpecialty(specialty string) bool {
	for _, s := range d.Specialties {
		if s == specialty {
			return true
		}
	}
	return false
}

// Initials returns up to two letters for the avatar, skipping a leading "Dr."
func (d *Doctor) Initials() string {
	name := d.Name
	if name == "" {
		return "?"
	}
	if strings.HasPrefix(strings.ToLower(name), "dr.") {
		name = strings.TrimSpace(name[len(doctorPrefix):])
	}

	words := strings.FieldsFunc(name, func(r rune) bool { return r == ' ' })
	switch len(words) {
	case 0:
		return "?"
	case 1:
		runes := []rune(words[0])
		if len(runes) > 2 {
			runes = runes[:2]
		}
		return strings.ToUpper(string(runes))
	}

	first := []rune(words[0])[0]
	last := []rune(words[len(words)-1])[0]
	return string([]rune{unicode.ToUpper(first), unicode.ToUpper(last)})
}

// AvatarColor picks a stable palette colour from the name
func (d *Doctor) AvatarColor() string {
	if d.Name == "" {
		return DefaultAvatarColor
	}

	var hash int64
	for _, unit := range utf16.Encode([]rune(d.Name)) {
		hash = int64(unit) + int64(int32(hash)<<5) - hash
	}
	if hash < 0 {
		hash = -hash
	}
	return avatarPalette[hash%int64(len(avatarPalette))]
}

// StringList stores a string slice as a jsonb array
type StringList []string

// Value returns json value, implement driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan scan value into StringList, implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	bytes, err := jsonBytes(value)
	if err != nil || bytes == nil {
		*l = nil
		return err
	}
	var result []string
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*l = result
	return nil
}

// ModeList stores the supported consultation modes as a jsonb array
type ModeList []ConsultationMode

func (l ModeList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]ConsultationMode(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *ModeList) Scan(value interface{}) error {
	bytes, err := jsonBytes(value)
	if err != nil || bytes == nil {
		*l = nil
		return err
	}
	var result []ConsultationMode
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*l = result
	return nil
}

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}
}
