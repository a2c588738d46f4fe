package managers

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"bloqnet/internal/pkg/errs"
)

// Request payload schemas. Validation is structural only (fields, types,
// enums, ranges); referential checks such as bloq existence are done by the
// manager after the payload is accepted.
var (
	bloqCreateSchema   = closedObject(bloqProperties(), "title", "address")
	bloqUpdateSchema   = closedObject(withIDProperty(bloqProperties()), "id", "title", "address")
	lockerCreateSchema = closedObject(map[string]*openapi3.Schema{
		"bloqId":     openapi3.NewStringSchema().WithFormat("uuid"),
		"status":     openapi3.NewStringSchema().WithEnum("OPEN", "CLOSED"),
		"isOccupied": openapi3.NewBoolSchema(),
	}, "bloqId", "status", "isOccupied")
	rentCreateSchema = closedObject(map[string]*openapi3.Schema{
		"weight": openapi3.NewFloat64Schema().WithMin(0),
		"size":   openapi3.NewStringSchema().WithEnum("XS", "S", "M", "L", "XL"),
	}, "weight", "size")
)

func bloqProperties() map[string]*openapi3.Schema {
	return map[string]*openapi3.Schema{
		"title":   openapi3.NewStringSchema(),
		"address": openapi3.NewStringSchema(),
	}
}

func withIDProperty(props map[string]*openapi3.Schema) map[string]*openapi3.Schema {
	props["id"] = openapi3.NewStringSchema().WithFormat("uuid")
	return props
}

// closedObject builds an object schema that rejects unknown properties.
func closedObject(props map[string]*openapi3.Schema, required ...string) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	for name, prop := range props {
		schema = schema.WithProperty(name, prop)
	}
	schema.Required = required
	schema.AdditionalProperties = openapi3.AdditionalProperties{Has: openapi3.BoolPtr(false)}
	return schema
}

func validatePayload(schema *openapi3.Schema, payload map[string]any) error {
	if payload == nil {
		return errs.NewValueIsRequiredError("payload")
	}
	if err := schema.VisitJSON(payload); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("payload", err)
	}
	return nil
}

// rejectClientFields guards server-assigned fields. The schemas already
// reject unknown properties, but these fields deserve a pointed message
// rather than a generic schema violation.
func rejectClientFields(payload map[string]any, fields ...string) error {
	for _, field := range fields {
		if _, ok := payload[field]; ok {
			return errs.NewValueIsInvalidErrorWithCause(field,
				fmt.Errorf("%q is assigned by the server", field))
		}
	}
	return nil
}

func stringField(payload map[string]any, key string) string {
	value, _ := payload[key].(string)
	return value
}

func numberField(payload map[string]any, key string) float64 {
	switch value := payload[key].(type) {
	case float64:
		return value
	case int:
		return float64(value)
	}
	return 0
}

func boolField(payload map[string]any, key string) bool {
	value, _ := payload[key].(bool)
	return value
}
