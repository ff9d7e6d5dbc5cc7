/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package coreutils

import "fmt"

// MapObject is a decoded JSON job dictionary.
type MapObject map[string]interface{}

func (m MapObject) AsString(name string) (val string, ok bool, err error) {
	switch v := m[name].(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	default:
		return "", true, fmt.Errorf("field '%s' must be a string: %w", name, ErrFieldTypeMismatch)
	}
}

func (m MapObject) AsStringRequired(name string) (val string, err error) {
	val, ok, err := m.AsString(name)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("field '%s' missing: %w", name, ErrFieldsMissed)
	}
	return val, nil
}

func (m MapObject) AsObject(name string) (val MapObject, ok bool, err error) {
	switch v := m[name].(type) {
	case nil:
		return nil, false, nil
	case map[string]interface{}:
		return MapObject(v), true, nil
	case MapObject:
		return v, true, nil
	default:
		return nil, true, fmt.Errorf("field '%s' must be an object: %w", name, ErrFieldTypeMismatch)
	}
}

func (m MapObject) AsInt64(name string) (val int64, ok bool, err error) {
	switch v := m[name].(type) {
	case nil:
		return 0, false, nil
	case float64:
		return int64(v), true, nil
	case int64:
		return v, true, nil
	case int:
		return int64(v), true, nil
	default:
		return 0, true, fmt.Errorf("field '%s' must be an int64: %w", name, ErrFieldTypeMismatch)
	}
}

func (m MapObject) AsFloat64(name string) (val float64, ok bool, err error) {
	switch v := m[name].(type) {
	case nil:
		return 0, false, nil
	case float64:
		return v, true, nil
	case int64:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	default:
		return 0, true, fmt.Errorf("field '%s' must be a float64: %w", name, ErrFieldTypeMismatch)
	}
}

func (m MapObject) AsBoolean(name string) (val bool, ok bool, err error) {
	switch v := m[name].(type) {
	case nil:
		return false, false, nil
	case bool:
		return v, true, nil
	default:
		return false, true, fmt.Errorf("field '%s' must be a boolean: %w", name, ErrFieldTypeMismatch)
	}
}

func (m MapObject) AsObjects(name string) (val []interface{}, ok bool, err error) {
	switch v := m[name].(type) {
	case nil:
		return nil, false, nil
	case []interface{}:
		return v, true, nil
	default:
		return nil, true, fmt.Errorf("field '%s' must be an array: %w", name, ErrFieldTypeMismatch)
	}
}

// AsStrings reads an array field whose elements must all be strings.
func (m MapObject) AsStrings(name string) (val []string, ok bool, err error) {
	if v, isTyped := m[name].([]string); isTyped {
		return v, true, nil
	}
	elems, ok, err := m.AsObjects(name)
	if err != nil || !ok {
		return nil, ok, err
	}
	val = make([]string, len(elems))
	for i, elem := range elems {
		s, isStr := elem.(string)
		if !isStr {
			return nil, true, fmt.Errorf("field '%s' element %d must be a string: %w", name, i, ErrFieldTypeMismatch)
		}
		val[i] = s
	}
	return val, true, nil
}

// AsFloat64s reads an array field whose elements must all be numbers.
func (m MapObject) AsFloat64s(name string) (val []float64, ok bool, err error) {
	if v, isTyped := m[name].([]float64); isTyped {
		return v, true, nil
	}
	elems, ok, err := m.AsObjects(name)
	if err != nil || !ok {
		return nil, ok, err
	}
	val = make([]float64, len(elems))
	for i, elem := range elems {
		switch n := elem.(type) {
		case float64:
			val[i] = n
		case int64:
			val[i] = float64(n)
		case int:
			val[i] = float64(n)
		default:
			return nil, true, fmt.Errorf("field '%s' element %d must be a number: %w", name, i, ErrFieldTypeMismatch)
		}
	}
	return val, true, nil
}
