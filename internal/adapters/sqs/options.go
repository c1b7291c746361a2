package sqsadapter

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

const (
	opSend    = "send"
	opReceive = "receive"
)

// ErrInvalidOptions is matched by every error produced while merging extra options.
var ErrInvalidOptions = errors.New("invalid options")

// Extra holds additional request fields keyed by their SQS API name,
// e.g. MessageGroupId, DelaySeconds or MaxNumberOfMessages.
// Keys are matched case-insensitively.
type Extra map[string]any

// OptionsError reports extra options that do not fit the request.
type OptionsError struct {
	Op  string
	Err error
}

func (e *OptionsError) Error() string {
	return fmt.Sprintf("sqs %s: %s: %v", e.Op, ErrInvalidOptions, e.Err)
}

func (e *OptionsError) Unwrap() []error {
	return []error{ErrInvalidOptions, e.Err}
}

// apply overlays the options onto input, which must be a pointer to an SDK input struct.
// The map itself is only read.
func (e Extra) apply(op string, input any) error {
	if len(e) == 0 {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      input,
		ErrorUnused: true,
		DecodeHook:  decodeHook,
		// allocate fresh values instead of writing through pointers already set on input
		ZeroFields: true,
	})
	if err != nil {
		return &OptionsError{Op: op, Err: err}
	}

	if err := dec.Decode(map[string]any(e)); err != nil {
		return &OptionsError{Op: op, Err: err}
	}

	return nil
}

var (
	decodeHook = mapstructure.ComposeDecodeHookFunc(exactIntegerHook, base64BytesHook)
	bytesType  = reflect.TypeOf([]byte(nil))
)

// exactIntegerHook rejects numbers that would be truncated or wrapped when
// stored in an integer field. JSON numbers arrive as float64.
func exactIntegerHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	target := reflect.New(to).Elem()
	v := reflect.ValueOf(data)

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch v.Kind() {
		case reflect.Float32, reflect.Float64:
			f := v.Float()
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 || target.OverflowInt(int64(f)) {
				return nil, fmt.Errorf("%v does not fit %s", data, to)
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if target.OverflowInt(v.Int()) {
				return nil, fmt.Errorf("%v does not fit %s", data, to)
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if v.Uint() > math.MaxInt64 || target.OverflowInt(int64(v.Uint())) {
				return nil, fmt.Errorf("%v does not fit %s", data, to)
			}
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		switch v.Kind() {
		case reflect.Float32, reflect.Float64:
			f := v.Float()
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 || target.OverflowUint(uint64(f)) {
				return nil, fmt.Errorf("%v does not fit %s", data, to)
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if v.Int() < 0 || target.OverflowUint(uint64(v.Int())) {
				return nil, fmt.Errorf("%v does not fit %s", data, to)
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if target.OverflowUint(v.Uint()) {
				return nil, fmt.Errorf("%v does not fit %s", data, to)
			}
		}
	}

	return data, nil
}

// base64BytesHook decodes binary fields, e.g. BinaryValue, from the standard
// base64 text that encoding/json produces for []byte.
func base64BytesHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != bytesType {
		return data, nil
	}

	b, err := base64.StdEncoding.DecodeString(reflect.ValueOf(data).String())
	if err != nil {
		return nil, fmt.Errorf("binary value is not base64: %w", err)
	}

	return b, nil
}
