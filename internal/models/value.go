package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// CodeModel - элемент справочника, содержащий только код.
type CodeModel struct {
	Code string `json:"code"`
}

func (c CodeModel) validate(path string) error {
	if c.Code == "" {
		return missingField(path, "code")
	}
	return nil
}

// CodeName - каноническая пара (код, наименование) справочника.
// Используется для регионов, категорий, причин, типов процедур.
type CodeName struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (c CodeName) validate(path string) error {
	if c.Code == "" {
		return missingField(path, "code")
	}
	return nil
}

// CodeNameValue - элемент справочника с произвольным значением.
type CodeNameValue struct {
	Code  string       `json:"code"`
	Name  string       `json:"name"`
	Value VariantValue `json:"value"`
}

func (c *CodeNameValue) validate(path string) error {
	if c.Code == "" {
		return missingField(path, "code")
	}
	if err := c.Value.classify(); err != nil {
		return invalidField(path, "value", err)
	}
	return nil
}

// ValueKind - тег формы значения VariantValue.
type ValueKind int

const (
	ValueAbsent ValueKind = iota
	ValueString
	ValueInt
	ValueFloat
	ValueCodeName
	ValueCodeNameList
)

// VariantValue - значение с закрытым набором возможных форм: строка,
// целое, дробное, пара (код, наименование) или список таких пар.
// Форма определяется по сырому входу на этапе валидации; неявных
// преобразований между формами нет, потребитель обязан разобрать тег.
type VariantValue struct {
	raw  json.RawMessage
	kind ValueKind
	str  string
	num  int64
	flt  float64
	ref  CodeName
	list []CodeName
}

func (v *VariantValue) UnmarshalJSON(b []byte) error {
	v.raw = append(v.raw[:0], b...)
	return nil
}

// classify определяет форму значения. Целое отличается от дробного
// по наличию дробной части в литерале.
func (v *VariantValue) classify() error {
	trimmed := bytes.TrimSpace(v.raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("%w: value is missing", ErrUnsupportedVariantShape)
	}
	switch trimmed[0] {
	case '"':
		if err := json.Unmarshal(trimmed, &v.str); err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedVariantShape, err)
		}
		v.kind = ValueString
	case '{':
		var ref CodeName
		if err := json.Unmarshal(trimmed, &ref); err != nil || ref.Code == "" {
			return fmt.Errorf("%w: object is not a code/name pair", ErrUnsupportedVariantShape)
		}
		v.ref = ref
		v.kind = ValueCodeName
	case '[':
		var list []CodeName
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return fmt.Errorf("%w: array is not a list of code/name pairs", ErrUnsupportedVariantShape)
		}
		for _, ref := range list {
			if ref.Code == "" {
				return fmt.Errorf("%w: array element without code", ErrUnsupportedVariantShape)
			}
		}
		v.list = list
		v.kind = ValueCodeNameList
	default:
		if bytes.ContainsAny(trimmed, ".eE") {
			f, err := strconv.ParseFloat(string(trimmed), 64)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrUnsupportedVariantShape, trimmed)
			}
			v.flt = f
			v.kind = ValueFloat
		} else {
			n, err := strconv.ParseInt(string(trimmed), 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrUnsupportedVariantShape, trimmed)
			}
			v.num = n
			v.kind = ValueInt
		}
	}
	return nil
}

// Kind возвращает тег формы значения.
func (v VariantValue) Kind() ValueKind {
	return v.kind
}

// AsString возвращает строковое значение, если значение - строка.
func (v VariantValue) AsString() (string, bool) {
	return v.str, v.kind == ValueString
}

// AsInt возвращает целое значение, если значение - целое.
func (v VariantValue) AsInt() (int64, bool) {
	return v.num, v.kind == ValueInt
}

// AsFloat возвращает дробное значение, если значение - дробное.
func (v VariantValue) AsFloat() (float64, bool) {
	return v.flt, v.kind == ValueFloat
}

// AsCodeName возвращает пару (код, наименование), если значение - объект.
func (v VariantValue) AsCodeName() (CodeName, bool) {
	return v.ref, v.kind == ValueCodeName
}

// AsCodeNameList возвращает список пар, если значение - массив.
func (v VariantValue) AsCodeNameList() ([]CodeName, bool) {
	return v.list, v.kind == ValueCodeNameList
}
