package metadata

// Object is a string-keyed map that remembers insertion order.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set stores value under key. A key that is already present keeps its position.
func (object *Object) Set(key string, value Value) *Object {
	if object.values == nil {
		object.values = make(map[string]Value)
	}
	if _, exists := object.values[key]; !exists {
		object.keys = append(object.keys, key)
	}
	object.values[key] = value
	return object
}

// Get returns the value stored under key.
func (object *Object) Get(key string) (Value, bool) {
	if object == nil {
		return Value{}, false
	}
	value, exists := object.values[key]
	return value, exists
}

// GetString returns the value under key when it holds a string.
func (object *Object) GetString(key string) (string, bool) {
	value, exists := object.Get(key)
	if !exists {
		return "", false
	}
	return value.AsString()
}

// Keys returns the keys in insertion order.
func (object *Object) Keys() []string {
	if object == nil {
		return nil
	}
	return append([]string(nil), object.keys...)
}

// Len returns the number of keys.
func (object *Object) Len() int {
	if object == nil {
		return 0
	}
	return len(object.keys)
}
