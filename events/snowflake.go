package events

import (
	"fmt"
	"strconv"
)

// Snowflake is a 64-bit gateway identifier. The zero value means "not set";
// real identifiers are never zero.
type Snowflake uint64

// ParseSnowflake parses the decimal string form used on the wire.
func ParseSnowflake(s string) (Snowflake, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snowflake %q: %w", s, err)
	}
	return Snowflake(v), nil
}

// IsZero reports whether the identifier is unset.
func (s Snowflake) IsZero() bool {
	return s == 0
}

func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// MarshalJSON encodes the snowflake as a decimal string. Gateways quote
// 64-bit identifiers to survive JSON implementations that truncate large
// integers to float64.
func (s Snowflake) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(s.String())), nil
}

// UnmarshalJSON accepts both the quoted string form and a bare number.
func (s *Snowflake) UnmarshalJSON(data []byte) error {
	str := string(data)
	if unquoted, err := strconv.Unquote(str); err == nil {
		str = unquoted
	}
	v, err := ParseSnowflake(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
