package types

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/pageza/portfolio/backend/internal/service"
	"github.com/pageza/portfolio/backend/internal/store"
)

// PatchOf builds the set of fields to write from a decoded update request.
// present holds the keys that appeared in the request body; only those end
// up in the patch. A null is accepted only on fields tagged patch:"nullable".
func PatchOf(req any, present map[string]json.RawMessage) (store.Fields, error) {
	v := reflect.Indirect(reflect.ValueOf(req))
	t := v.Type()

	patch := store.Fields{}
	var verr service.ValidationError
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		key, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if key == "" || key == "-" {
			continue
		}
		if _, ok := present[key]; !ok {
			continue
		}

		fv := v.Field(i)
		switch {
		case fv.Kind() == reflect.Pointer && fv.IsNil(), fv.Kind() == reflect.Slice && fv.IsNil():
			if f.Tag.Get("patch") != "nullable" {
				verr.Fields = append(verr.Fields, service.FieldError{Field: key, Message: "must not be null"})
				continue
			}
			patch[key] = nil
		case fv.Kind() == reflect.Pointer:
			patch[key] = fv.Elem().Interface()
		default:
			patch[key] = fv.Interface()
		}
	}

	if len(verr.Fields) > 0 {
		return nil, &verr
	}
	return patch, nil
}
