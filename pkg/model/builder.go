package model

import (
	"encoding/json"
	"reflect"

	"github.com/gocord/gocord/pkg/errorx"
	"github.com/mitchellh/mapstructure"
)

var snowflakeType = reflect.TypeOf(Snowflake(0))

// Build constructs a model of the given kind from a raw payload. The
// payload keys mirror the Discord API JSON object for that kind. Unknown
// keys are ignored; keys listed by the model's Required method must be
// present or construction fails with a MalformedPayload error. Nested
// model fields are resolved through the registry, so an override of one
// kind propagates to every model that embeds it.
func (r *Registry) Build(kind Kind, payload map[string]any) (any, error) {
	factory, err := r.Resolve(kind)
	if err != nil {
		return nil, err
	}

	instance := factory()

	if m, ok := instance.(interface{ Required() []string }); ok {
		for _, key := range m.Required() {
			if _, present := payload[key]; !present {
				return nil, errorx.New(errorx.MalformedPayload,
					"missing required field %s in payload of %s", key, kind)
			}
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     instance,
		Squash:     true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(decodeSnowflake, r.decodeNested),
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(payload); err != nil {
		return nil, errorx.New(errorx.MalformedPayload, "cannot decode payload of %s: %v", kind, err)
	}

	if b, ok := instance.(interface{ setRaw(map[string]any) }); ok {
		b.setRaw(payload)
	}

	return instance, nil
}

// BuildAs builds a model and asserts it to T, usually a contract interface
// or a concrete override type.
func BuildAs[T any](r *Registry, kind Kind, payload map[string]any) (T, error) {
	var zero T

	built, err := r.Build(kind, payload)
	if err != nil {
		return zero, err
	}

	t, ok := built.(T)
	if !ok {
		return zero, errorx.New(errorx.InvalidContract,
			"model of kind %s is %T, not %T", kind, built, zero)
	}

	return t, nil
}

// decodeSnowflake accepts the string form Discord uses on the wire, plus
// numeric forms for payloads assembled in process.
func decodeSnowflake(from, to reflect.Type, data any) (any, error) {
	if to != snowflakeType {
		return data, nil
	}

	switch v := data.(type) {
	case string:
		return ParseSnowflake(v)
	case json.Number:
		i, err := v.Int64()
		return Snowflake(i), err
	}

	return data, nil
}

// decodeNested builds interface-typed fields through the registry.
func (r *Registry) decodeNested(from, to reflect.Type, data any) (any, error) {
	kind, ok := r.contracts[to]
	if !ok {
		return data, nil
	}

	// A value of the right type already, e.g. set by an outer hook.
	if from.Implements(to) {
		return data, nil
	}

	payload, ok := data.(map[string]any)
	if !ok {
		return nil, errorx.New(errorx.MalformedPayload,
			"expected an object for nested %s, got %T", kind, data)
	}

	return r.Build(kind, payload)
}
