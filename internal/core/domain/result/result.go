package result

import (
	"encoding/json"
	"reflect"
)

// Status codes carried in the envelope's code field.
const (
	CodeSuccess = 200
	CodeFail    = 500
)

// Default messages for the no-argument constructors.
const (
	DefaultSuccessMsg = "操作成功."
	DefaultErrorMsg   = "操作失败."
)

const (
	codeTag = "code"
	msgTag  = "msg"
	dataTag = "data"
)

// Result is the uniform response envelope returned by every API endpoint.
type Result struct {
	Code   int
	Msg    string
	Data   any
	extras map[string]any
	order  []string
}

// New builds an envelope with an arbitrary status code.
func New(code int, msg string, data any) *Result {
	return &Result{Code: code, Msg: msg, Data: data}
}

func Success() *Result {
	return SuccessMsg(DefaultSuccessMsg)
}

func SuccessMsg(msg string) *Result {
	return SuccessData(msg, nil)
}

func SuccessData(msg string, data any) *Result {
	return New(CodeSuccess, msg, data)
}

func Error() *Result {
	return ErrorMsg(DefaultErrorMsg)
}

func ErrorMsg(msg string) *Result {
	return ErrorData(msg, nil)
}

func ErrorData(msg string, data any) *Result {
	return New(CodeFail, msg, data)
}

// Set assigns a named field and returns the envelope for chaining.
// The reserved keys "code" (int), "msg" (string) and "data" update the standard fields;
// a reserved key with a value of the wrong type is ignored.
func (r *Result) Set(key string, value any) *Result {
	switch key {
	case codeTag:
		if v, ok := value.(int); ok {
			r.Code = v
		}
		return r
	case msgTag:
		if v, ok := value.(string); ok {
			r.Msg = v
		}
		return r
	case dataTag:
		r.Data = value
		return r
	}
	if r.extras == nil {
		r.extras = make(map[string]any)
	}
	if _, exists := r.extras[key]; !exists {
		r.order = append(r.order, key)
	}
	r.extras[key] = value
	return r
}

// Get returns a named field, including the standard ones.
func (r *Result) Get(key string) (any, bool) {
	switch key {
	case codeTag:
		return r.Code, true
	case msgTag:
		return r.Msg, true
	case dataTag:
		return r.Data, hasData(r.Data)
	}
	v, ok := r.extras[key]
	return v, ok
}

// IsSuccess reports whether the envelope carries the success code.
func (r *Result) IsSuccess() bool {
	return r.Code == CodeSuccess
}

// MarshalJSON writes code, msg, data (only when non-nil) and then the extra fields in insertion order.
func (r *Result) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	appendField := func(key string, value any) error {
		if len(buf) > 1 {
			buf = append(buf, ',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf = append(buf, k...)
		buf = append(buf, ':')
		buf = append(buf, v...)
		return nil
	}

	if err := appendField(codeTag, r.Code); err != nil {
		return nil, err
	}
	if err := appendField(msgTag, r.Msg); err != nil {
		return nil, err
	}
	if hasData(r.Data) {
		if err := appendField(dataTag, r.Data); err != nil {
			return nil, err
		}
	}
	for _, key := range r.order {
		if err := appendField(key, r.extras[key]); err != nil {
			return nil, err
		}
	}
	return append(buf, '}'), nil
}

// UnmarshalJSON is used by clients and tests decoding an envelope.
func (r *Result) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = Result{}
	if v, ok := raw[codeTag]; ok {
		if err := json.Unmarshal(v, &r.Code); err != nil {
			return err
		}
	}
	if v, ok := raw[msgTag]; ok {
		if err := json.Unmarshal(v, &r.Msg); err != nil {
			return err
		}
	}
	if v, ok := raw[dataTag]; ok {
		var data any
		if err := json.Unmarshal(v, &data); err != nil {
			return err
		}
		r.Data = data
	}
	for key, v := range raw {
		if key == codeTag || key == msgTag || key == dataTag {
			continue
		}
		var value any
		if err := json.Unmarshal(v, &value); err != nil {
			return err
		}
		r.Set(key, value)
	}
	return nil
}

func hasData(data any) bool {
	if data == nil {
		return false
	}
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return !v.IsNil()
	}
	return true
}
