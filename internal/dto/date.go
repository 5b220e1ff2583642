package dto

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/GlebRadaev/betledger/pkg/validate"
)

const dayLayout = "2006-01-02"

// Date accepts either an RFC3339 timestamp or a bare YYYY-MM-DD day.
type Date struct {
	time.Time
}

func init() {
	validate.RegisterType(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(Date); ok {
			return d.Time
		}
		return nil
	}, Date{})
}

func ParseDate(s string) (Date, error) {
	for _, layout := range []string{time.RFC3339, dayLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return d.Time.MarshalJSON()
}
