package soql

import (
	"reflect"
	"strings"
)

// SObjecter is implemented by models that name their Salesforce object.
type SObjecter interface {
	SObjectName() string
}

// Model describes the object and fields derived from a struct.
type Model struct {
	Name   string
	Fields []string
}

// ParseModel derives a Model from a struct, a pointer to one, or a slice of
// either. Exported fields are selected by name unless tagged otherwise:
//
//	type Contact struct {
//		Id          string
//		AccountName string `soql:"column:Account.Name"`
//		Cache       string `soql:"-"`
//	}
//
// Embedded structs contribute their fields in place.
func ParseModel(model any) *Model {
	modelType := reflect.TypeOf(model)
	for modelType != nil && (modelType.Kind() == reflect.Ptr || modelType.Kind() == reflect.Slice || modelType.Kind() == reflect.Array) {
		modelType = modelType.Elem()
	}

	m := &Model{}
	if modelType == nil || modelType.Kind() != reflect.Struct {
		return m
	}

	m.Name = modelType.Name()
	if s, ok := model.(SObjecter); ok {
		m.Name = s.SObjectName()
	} else if s, ok := reflect.New(modelType).Interface().(SObjecter); ok {
		m.Name = s.SObjectName()
	}

	m.Fields = fieldsOf(modelType)
	return m
}

func fieldsOf(t reflect.Type) []string {
	var fields []string
	for i := 0; i < t.NumField(); i++ {
		fieldStruct := t.Field(i)

		tag, hasTag := fieldStruct.Tag.Lookup("soql")
		if tag == "-" {
			continue
		}

		if fieldStruct.Anonymous && !hasTag {
			embedded := fieldStruct.Type
			if embedded.Kind() == reflect.Ptr {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				fields = append(fields, fieldsOf(embedded)...)
				continue
			}
		}

		if !fieldStruct.IsExported() {
			continue
		}

		name := fieldStruct.Name
		if val, ok := ParseTagSetting(tag)["COLUMN"]; ok && val != "" {
			name = val
		}
		fields = append(fields, name)
	}
	return fields
}

// ParseTagSetting splits a "key:value;flag" tag into upper-cased keys.
func ParseTagSetting(str string) map[string]string {
	settings := map[string]string{}
	for _, value := range strings.Split(str, ";") {
		if strings.TrimSpace(value) == "" {
			continue
		}
		v := strings.Split(value, ":")
		k := strings.TrimSpace(strings.ToUpper(v[0]))
		if len(v) >= 2 {
			settings[k] = strings.TrimSpace(strings.Join(v[1:], ":"))
		} else {
			settings[k] = k
		}
	}
	return settings
}

// SelectModel returns a new Builder selecting the fields of model.
func SelectModel(model any) *Builder {
	return New().AddSelectModel(model)
}

// FromModel returns a new Builder selecting the fields of model from its
// object.
func FromModel(model any) *Builder {
	m := ParseModel(model)
	return New().SetFrom(m.Name).AddSelect(m.Fields...)
}

// AddSelectModel appends the fields of model to the select list.
func (b *Builder) AddSelectModel(model any) *Builder {
	return b.AddSelect(ParseModel(model).Fields...)
}
