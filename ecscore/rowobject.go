package ecscore

import "reflect"

// ReadRow materializes the component value at (archetype, row, id) into a
// transient map of field name -> value, per its registered schema. Used
// by the snapshot codec (package snapshot) to serialize component
// instances without each component type needing bespoke marshaling code.
func (s *Store) ReadRow(a *Archetype, row int, id ComponentID) (map[string]any, error) {
	ct := s.Registry.TypeOf(id)
	if ct == nil {
		return nil, ErrComponentNotRegistered
	}
	col, ok := a.columns[id]
	if !ok {
		return nil, ErrComponentNotFound
	}
	v := reflect.ValueOf(col.getAny(row))
	out := make(map[string]any, len(ct.Schema))
	for _, f := range ct.Schema {
		out[f.Name] = v.FieldByName(f.Name).Interface()
	}
	return out, nil
}

// WriteRow writes props into the component value at (archetype, row, id),
// validating that every schema field is present and coercing booleans to
// 0/1 for integer-kinded fields the way the snapshot text form encodes
// them (spec.md §4.2, §6). The zero value of the component's struct type
// is used as the base, so omitted non-schema fields stay zeroed.
func (s *Store) WriteRow(a *Archetype, row int, id ComponentID, props map[string]any) error {
	ct := s.Registry.TypeOf(id)
	if ct == nil {
		return ErrComponentNotRegistered
	}
	col, ok := a.columns[id]
	if !ok {
		return ErrComponentNotFound
	}

	zero := reflect.New(reflect.TypeOf(col.getAny(row))).Elem()
	for _, f := range ct.Schema {
		raw, present := props[f.Name]
		if !present {
			return ErrFieldNotPresent
		}
		field := zero.FieldByName(f.Name)
		assignCoerced(field, raw, f.Kind)
	}
	col.setAny(row, zero.Interface())
	return nil
}

// assignCoerced sets field from raw, coercing bool -> 0/1 for integer
// kinds and performing the small numeric widenings JSON/YAML decoding
// typically hands back (float64 for every number). raw's underlying
// reflect.Kind drives the coercion rather than its exact static type, so
// this handles both generic decoded primitives (float64, int, bool) and
// the component's own named types (fx.FX, fx.Angle, ...) coming straight
// off a live ReadRow without an intervening text/binary round trip.
func assignCoerced(field reflect.Value, raw any, kind FieldKind) {
	if raw == nil {
		return
	}
	rv := reflect.ValueOf(raw)

	switch kind {
	case FieldBool:
		switch rv.Kind() {
		case reflect.Bool:
			field.SetBool(rv.Bool())
		case reflect.Float32, reflect.Float64:
			field.SetBool(rv.Float() != 0)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			field.SetBool(rv.Int() != 0)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			field.SetBool(rv.Uint() != 0)
		}
	case FieldI32, FieldU32:
		switch rv.Kind() {
		case reflect.Bool:
			if rv.Bool() {
				setIntLike(field, 1)
			} else {
				setIntLike(field, 0)
			}
		case reflect.Float32, reflect.Float64:
			setIntLike(field, int64(rv.Float()))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			setIntLike(field, rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			setIntLike(field, int64(rv.Uint()))
		}
	case FieldF32:
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			field.SetFloat(rv.Float())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			field.SetFloat(float64(rv.Int()))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			field.SetFloat(float64(rv.Uint()))
		}
	default:
		if rv.Type().AssignableTo(field.Type()) {
			field.Set(rv)
		}
	}
}

func setIntLike(field reflect.Value, v int64) {
	switch field.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		field.SetUint(uint64(v))
	default:
		field.SetInt(v)
	}
}
