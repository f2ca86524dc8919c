package utils

import (
	"fmt"
	"reflect"
)

// MergeNonZero overlays every non-zero exported field of src onto dst.
// Both must be pointers to the same struct type. Zero-valued src fields
// leave the dst value untouched, which is what lets a freshly
// authenticated identity merge on top of a previously stored profile
// without erasing its role-specific history.
func MergeNonZero(dst, src any) {
	dstValue := reflect.ValueOf(dst)
	srcValue := reflect.ValueOf(src)

	if dstValue.Kind() != reflect.Ptr || srcValue.Kind() != reflect.Ptr {
		panic("dst and src must be pointers to structs")
	}

	dstValue = dstValue.Elem()
	srcValue = srcValue.Elem()

	if dstValue.Kind() != reflect.Struct || dstValue.Type() != srcValue.Type() {
		panic(fmt.Sprintf("dst and src must be the same struct type, got %s and %s", dstValue.Type(), srcValue.Type()))
	}

	for i := 0; i < srcValue.NumField(); i++ {
		if srcValue.Type().Field(i).PkgPath != "" {
			continue
		}

		field := srcValue.Field(i)
		if field.IsZero() {
			continue
		}

		dstValue.Field(i).Set(field)
	}
}

var ColumnTag = "db"

// StructTagValues collects the db column names of a struct's exported
// fields, used to build select lists for the sqlite-backed store.
func StructTagValues(input any) []string {

	targetValue := reflect.ValueOf(input)
	if targetValue.Kind() == reflect.Ptr {
		targetValue = targetValue.Elem()
	}

	if targetValue.Kind() != reflect.Struct {
		panic("input must be a pointer to a struct or a struct")
	}

	targetType := targetValue.Type()

	result := make([]string, 0, targetValue.NumField())

	for i := 0; i < targetValue.NumField(); i++ {

		if targetType.Field(i).PkgPath != "" {
			continue
		}

		tagValue := targetType.Field(i).Tag.Get(ColumnTag)
		if tagValue == "" || tagValue == "-" {
			continue
		}

		result = append(result, tagValue)

	}

	return result

}
