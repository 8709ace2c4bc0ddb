package metadata

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/temirov/chaotic-gateway/internal/apperrors"
)

const hexDigits = "0123456789abcdef"

// Canonical serializes value exactly as ECMAScript JSON.stringify would: keys
// in insertion order, no insignificant whitespace, ES number formatting, and
// minimal string escaping.
func Canonical(value Value) ([]byte, error) {
	encoder := canonicalEncoder{visiting: make(map[*Object]struct{})}
	return encoder.appendValue(nil, value)
}

type canonicalEncoder struct {
	visiting map[*Object]struct{}
}

func (encoder canonicalEncoder) appendValue(buffer []byte, value Value) ([]byte, error) {
	switch value.kind {
	case KindNull:
		return append(buffer, "null"...), nil
	case KindBool:
		return strconv.AppendBool(buffer, value.boolean), nil
	case KindNumber:
		return appendNumber(buffer, value.number)
	case KindString:
		return appendString(buffer, value.text)
	case KindArray:
		buffer = append(buffer, '[')
		for index, item := range value.items {
			if index > 0 {
				buffer = append(buffer, ',')
			}
			var itemError error
			if buffer, itemError = encoder.appendValue(buffer, item); itemError != nil {
				return nil, itemError
			}
		}
		return append(buffer, ']'), nil
	case KindObject:
		return encoder.appendObject(buffer, value.object)
	default:
		return nil, fmt.Errorf("%w: unknown value kind %d", apperrors.ErrSerialization, value.kind)
	}
}

func (encoder canonicalEncoder) appendObject(buffer []byte, object *Object) ([]byte, error) {
	if _, cyclic := encoder.visiting[object]; cyclic {
		return nil, fmt.Errorf("%w: cyclic object reference", apperrors.ErrSerialization)
	}
	encoder.visiting[object] = struct{}{}
	defer delete(encoder.visiting, object)

	buffer = append(buffer, '{')
	for index, key := range object.keys {
		if index > 0 {
			buffer = append(buffer, ',')
		}
		var encodeError error
		if buffer, encodeError = appendString(buffer, key); encodeError != nil {
			return nil, encodeError
		}
		buffer = append(buffer, ':')
		if buffer, encodeError = encoder.appendValue(buffer, object.values[key]); encodeError != nil {
			return nil, encodeError
		}
	}
	return append(buffer, '}'), nil
}

// appendNumber follows the ECMAScript Number-to-String rule.
func appendNumber(buffer []byte, number float64) ([]byte, error) {
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return nil, fmt.Errorf("%w: non-finite number %v", apperrors.ErrSerialization, number)
	}
	if number == 0 {
		// Covers negative zero, which JSON.stringify prints as 0.
		return append(buffer, '0'), nil
	}
	format := byte('f')
	if magnitude := math.Abs(number); magnitude < 1e-6 || magnitude >= 1e21 {
		format = 'e'
	}
	start := len(buffer)
	buffer = strconv.AppendFloat(buffer, number, format, -1, 64)
	if format == 'e' {
		// Go pads negative exponents to two digits: 1e-07 becomes 1e-7.
		length := len(buffer)
		if length-start >= 4 && buffer[length-4] == 'e' && buffer[length-3] == '-' && buffer[length-2] == '0' {
			buffer[length-2] = buffer[length-1]
			buffer = buffer[:length-1]
		}
	}
	return buffer, nil
}

func appendString(buffer []byte, text string) ([]byte, error) {
	buffer = append(buffer, '"')
	for index := 0; index < len(text); {
		character, size := utf8.DecodeRuneInString(text[index:])
		if character == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("%w: string is not valid UTF-8 at byte %d", apperrors.ErrSerialization, index)
		}
		switch character {
		case '"':
			buffer = append(buffer, '\\', '"')
		case '\\':
			buffer = append(buffer, '\\', '\\')
		case '\b':
			buffer = append(buffer, '\\', 'b')
		case '\f':
			buffer = append(buffer, '\\', 'f')
		case '\n':
			buffer = append(buffer, '\\', 'n')
		case '\r':
			buffer = append(buffer, '\\', 'r')
		case '\t':
			buffer = append(buffer, '\\', 't')
		default:
			if character < 0x20 {
				buffer = append(buffer, '\\', 'u', '0', '0', hexDigits[character>>4], hexDigits[character&0xF])
			} else {
				buffer = append(buffer, text[index:index+size]...)
			}
		}
		index += size
	}
	return append(buffer, '"'), nil
}
