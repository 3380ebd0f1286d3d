// Package rpc describes the marketplace gRPC services. Messages are
// google.protobuf.Struct values so the view layer can call the services
// without generated stubs; handlers decode them into typed DTOs.
package rpc

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var ErrBadRequest = errors.New("bad request")

// Decode copies the fields of req into out using mapstructure tags. Numbers
// arrive as float64 and strings such as "true" are accepted for booleans.
// Unknown fields and fractional numbers for integer fields are rejected.
func Decode(req *structpb.Struct, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       wholeNumberHook,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(req.AsMap()); err != nil {
		return errors.Wrapf(ErrBadRequest, "%v", err)
	}
	return nil
}

// wholeNumberHook stops mapstructure from truncating 2.5 into an int field.
func wholeNumberHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f := data.(float64); f != math.Trunc(f) {
			return nil, errors.Errorf("%v is not a whole number", f)
		}
	}
	return data, nil
}

// Encode converts a json-tagged response value into a Struct.
func Encode(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "rpc: encode response")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, errors.Wrap(err, "rpc: encode response")
	}
	return out, nil
}
