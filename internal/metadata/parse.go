package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/temirov/chaotic-gateway/internal/apperrors"
)

// Parse decodes a single JSON document into a Value, keeping object keys in
// document order. Duplicate keys, overflowing numbers, trailing data, invalid
// UTF-8 and unpaired surrogate escapes are rejected.
func Parse(data []byte) (Value, error) {
	if encodingError := checkEncoding(data); encodingError != nil {
		return Value{}, encodingError
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	value, parseError := parseValue(decoder)
	if parseError != nil {
		return Value{}, wrapParseError(parseError)
	}
	if _, trailingError := decoder.Token(); !errors.Is(trailingError, io.EOF) {
		return Value{}, fmt.Errorf("%w: trailing data after JSON document", apperrors.ErrSerialization)
	}
	return value, nil
}

// checkEncoding rejects input that encoding/json would silently rewrite to U+FFFD.
func checkEncoding(data []byte) error {
	if !utf8.Valid(data) {
		return fmt.Errorf("%w: document is not valid UTF-8", apperrors.ErrSerialization)
	}
	for index := 0; index < len(data); index++ {
		if data[index] != '\\' {
			continue
		}
		index++
		if index >= len(data) || data[index] != 'u' {
			continue
		}
		unit, isEscape := hexEscapeAt(data, index+1)
		if !isEscape {
			continue
		}
		index += 4
		switch {
		case utf16.IsSurrogate(unit) && unit < surrogateLowStart:
			if !isLowSurrogateEscapeAt(data, index+1) {
				return fmt.Errorf("%w: unpaired surrogate escape", apperrors.ErrSerialization)
			}
			index += 6
		case utf16.IsSurrogate(unit):
			return fmt.Errorf("%w: unpaired surrogate escape", apperrors.ErrSerialization)
		}
	}
	return nil
}

const surrogateLowStart = 0xdc00

// hexEscapeAt reads the four hex digits of a \u escape starting at offset.
func hexEscapeAt(data []byte, offset int) (rune, bool) {
	if offset+4 > len(data) {
		return 0, false
	}
	unit, parseError := strconv.ParseUint(string(data[offset:offset+4]), 16, 16)
	if parseError != nil {
		return 0, false
	}
	return rune(unit), true
}

// isLowSurrogateEscapeAt reports whether a \uDC00-\uDFFF escape starts at offset.
func isLowSurrogateEscapeAt(data []byte, offset int) bool {
	if offset+2 > len(data) || data[offset] != '\\' || data[offset+1] != 'u' {
		return false
	}
	unit, isEscape := hexEscapeAt(data, offset+2)
	return isEscape && utf16.IsSurrogate(unit) && unit >= surrogateLowStart
}

func wrapParseError(parseError error) error {
	if errors.Is(parseError, apperrors.ErrSerialization) {
		return parseError
	}
	return fmt.Errorf("%w: %v", apperrors.ErrSerialization, parseError)
}

func parseValue(decoder *json.Decoder) (Value, error) {
	token, tokenError := decoder.Token()
	if tokenError != nil {
		return Value{}, tokenError
	}
	switch typed := token.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(typed), nil
	case string:
		return String(typed), nil
	case json.Number:
		number, numberError := strconv.ParseFloat(typed.String(), 64)
		if numberError != nil || math.IsInf(number, 0) {
			return Value{}, fmt.Errorf("%w: number %s is not representable", apperrors.ErrSerialization, typed)
		}
		return Number(number), nil
	case json.Delim:
		switch typed {
		case '{':
			return parseObject(decoder)
		case '[':
			return parseArray(decoder)
		}
	}
	return Value{}, fmt.Errorf("%w: unexpected token %v", apperrors.ErrSerialization, token)
}

func parseObject(decoder *json.Decoder) (Value, error) {
	object := NewObject()
	for decoder.More() {
		keyToken, keyError := decoder.Token()
		if keyError != nil {
			return Value{}, keyError
		}
		key, isString := keyToken.(string)
		if !isString {
			return Value{}, fmt.Errorf("%w: object key %v is not a string", apperrors.ErrSerialization, keyToken)
		}
		if _, duplicate := object.values[key]; duplicate {
			return Value{}, fmt.Errorf("%w: duplicate object key %q", apperrors.ErrSerialization, key)
		}
		member, memberError := parseValue(decoder)
		if memberError != nil {
			return Value{}, memberError
		}
		object.Set(key, member)
	}
	if _, closeError := decoder.Token(); closeError != nil {
		return Value{}, closeError
	}
	return ObjectValue(object), nil
}

func parseArray(decoder *json.Decoder) (Value, error) {
	items := make([]Value, 0)
	for decoder.More() {
		item, itemError := parseValue(decoder)
		if itemError != nil {
			return Value{}, itemError
		}
		items = append(items, item)
	}
	if _, closeError := decoder.Token(); closeError != nil {
		return Value{}, closeError
	}
	return Value{kind: KindArray, items: items}, nil
}
