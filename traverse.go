package redact

import (
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the redact tag with sentinel
	sentinel.Tag(TagRedact)
}

// fieldBehavior is the resolved behavior of an annotated field.
type fieldBehavior int

const (
	behaviorWalk fieldBehavior = iota
	behaviorClassify
)

// fieldPlan describes how to redact a single annotated field.
// Unannotated fields have no plan; they pass through untouched.
type fieldPlan struct {
	index    []int  // reflect.Value.FieldByIndex access path
	name     string // field path for error messages
	behavior fieldBehavior
	class    Classification // classify behavior only
}

// typePlan holds the field plans for one struct type. Plans are immutable
// after construction and shared by every traversal of the type.
type typePlan struct {
	typeName string
	fields   []fieldPlan
}

var (
	plans   = make(map[reflect.Type]*typePlan)
	plansMu sync.RWMutex
)

var sensitiveValueType = reflect.TypeOf((*SensitiveValue)(nil)).Elem()

// planFor returns the cached plan for a struct type, building and
// validating it (and every struct type reachable through its walk fields)
// on first use.
func planFor(rt reflect.Type) (*typePlan, error) {
	plansMu.RLock()
	plan, ok := plans[rt]
	plansMu.RUnlock()
	if ok {
		return plan, nil
	}

	plansMu.Lock()
	defer plansMu.Unlock()

	// Double-check pattern
	if plan, ok := plans[rt]; ok {
		return plan, nil
	}

	// building breaks cycles in self-referential types: a type already
	// under construction resolves to its partially built plan.
	building := make(map[reflect.Type]*typePlan)
	plan, err := buildPlan(rt, building)
	if err != nil {
		return nil, err
	}
	for t, built := range building {
		plans[t] = built
	}
	return plan, nil
}

// buildPlan scans a struct type's metadata and resolves each field to
// pass-through, walk, or classify. Caller holds plansMu.
func buildPlan(rt reflect.Type, building map[reflect.Type]*typePlan) (*typePlan, error) {
	if plan, ok := plans[rt]; ok {
		return plan, nil
	}
	if plan, ok := building[rt]; ok {
		return plan, nil
	}

	plan := &typePlan{typeName: rt.Name()}
	building[rt] = plan

	spec := scanType(rt)
	for _, field := range spec.Fields {
		tag, ok := field.Tags[TagRedact]
		if !ok {
			continue
		}

		fullName := plan.typeName + "." + field.Name

		if tag == TagWalk {
			// Pre-build plans for every struct reachable through the
			// field so tag misuse surfaces at construction, not mid-walk.
			if target := walkStructTarget(field.ReflectType); target != nil {
				if _, err := buildPlan(target, building); err != nil {
					return nil, err
				}
			}
			plan.fields = append(plan.fields, fieldPlan{
				index:    field.Index,
				name:     fullName,
				behavior: behaviorWalk,
			})
			continue
		}

		class := Classification(tag)
		if tag == "" || !IsBound(class) {
			return nil, newTagError(ErrUnknownClassification, fullName, tag)
		}
		if !isClassifiable(field.ReflectType) {
			return nil, newTagError(ErrNotClassifiable, fullName, tag)
		}
		plan.fields = append(plan.fields, fieldPlan{
			index:    field.Index,
			name:     fullName,
			behavior: behaviorClassify,
			class:    class,
		})
	}

	return plan, nil
}

// scanType returns sentinel metadata for a struct type, preferring the
// registry and falling back to a direct reflection scan for types sentinel
// has not seen.
func scanType(rt reflect.Type) sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return spec
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        parseRedactTag(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return spec
}

// parseRedactTag extracts the redact tag from a struct tag.
func parseRedactTag(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	if val, ok := tag.Lookup(TagRedact); ok {
		tags[TagRedact] = val
	}
	return tags
}

// walkStructTarget unwraps pointer, slice, array, and map layers and
// returns the struct type a walk would recurse into, or nil if the chain
// ends in a non-struct. Map keys are not unwrapped; keys are never walked.
func walkStructTarget(rt reflect.Type) reflect.Type {
	for {
		switch rt.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map:
			rt = rt.Elem()
		case reflect.Struct:
			return rt
		default:
			return nil
		}
	}
}

// isClassifiable reports whether a classification applied to the type
// reaches a string or SensitiveValue leaf through any nesting of pointer,
// slice, array, and map wrappers.
func isClassifiable(rt reflect.Type) bool {
	for {
		if rt.Kind() == reflect.String {
			return true
		}
		if rt.Implements(sensitiveValueType) || reflect.PointerTo(rt).Implements(sensitiveValueType) {
			return true
		}
		switch rt.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map:
			rt = rt.Elem()
		default:
			return false
		}
	}
}

// apply redacts every annotated field of an addressable struct value.
func (p *typePlan) apply(rv reflect.Value, strategy Strategy) {
	for i := range p.fields {
		plan := &p.fields[i]
		field := rv.FieldByIndex(plan.index)
		switch plan.behavior {
		case behaviorClassify:
			classifyValue(plan.class, field, strategy)
		default:
			walkValue(field, strategy)
		}
	}
}

// counts tallies the plan's fields per behavior for observability.
func (p *typePlan) counts() (walked, classified int) {
	for i := range p.fields {
		if p.fields[i].behavior == behaviorClassify {
			classified++
		} else {
			walked++
		}
	}
	return walked, classified
}

// walkValue recurses structurally through a walked value. Scalars reset to
// their defaults, strings and unknown shapes pass through, containers
// recurse element-wise, and structs apply their own plans. Map keys are
// never redacted.
func walkValue(v reflect.Value, strategy Strategy) {
	if isScalarKind(v.Kind()) {
		if v.CanSet() {
			strategy.RedactScalar(v)
		}
		return
	}

	switch v.Kind() {
	case reflect.String:
		// Text leaves pass through under walk; only classify transforms text.
	case reflect.Struct:
		if v.CanAddr() {
			if sr, ok := v.Addr().Interface().(SelfRedactor); ok {
				sr.RedactSelf()
				return
			}
		}
		// Reachable struct types are planned at construction; an unseen
		// type (nothing to redact) yields an empty plan.
		if plan, err := planFor(v.Type()); err == nil {
			plan.apply(v, strategy)
		}
	case reflect.Pointer:
		if !v.IsNil() {
			walkValue(v.Elem(), strategy)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			walkValue(v.Index(i), strategy)
		}
	case reflect.Map:
		redactMapValues(v, strategy, walkValue)
	case reflect.Interface:
		if !v.IsNil() {
			if sr, ok := v.Interface().(SelfRedactor); ok {
				sr.RedactSelf()
			}
		}
	}
}

// classifyValue applies a classification's policy at the sensitive leaf,
// recursing through any nesting of pointer, slice, array, and map wrappers.
// Absent pointers stay absent, element order and count are preserved, and
// map keys pass through unchanged.
func classifyValue(class Classification, v reflect.Value, strategy Strategy) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(strategy.RedactLeaf(class, v.String()))
		}
	case reflect.Pointer:
		if !v.IsNil() {
			classifyValue(class, v.Elem(), strategy)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			classifyValue(class, v.Index(i), strategy)
		}
	case reflect.Map:
		redactMapValues(v, strategy, func(elem reflect.Value, s Strategy) {
			classifyValue(class, elem, s)
		})
	default:
		if v.CanAddr() {
			if sv, ok := v.Addr().Interface().(SensitiveValue); ok {
				sv.SetRedacted(strategy.RedactLeaf(class, sv.SensitiveString()))
			}
		}
	}
}

// redactMapValues rewrites each map value through fn, leaving keys
// byte-identical. Map values are not addressable, so each is copied into an
// addressable slot, redacted, and stored back under its original key.
func redactMapValues(v reflect.Value, strategy Strategy, fn func(reflect.Value, Strategy)) {
	iter := v.MapRange()
	for iter.Next() {
		elem := reflect.New(v.Type().Elem()).Elem()
		elem.Set(iter.Value())
		fn(elem, strategy)
		v.SetMapIndex(iter.Key(), elem)
	}
}
