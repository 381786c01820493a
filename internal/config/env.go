package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// applyEnvOverrides walks the config struct and overwrites every field whose
// `env` tag names a set environment variable. Nested structs are walked
// recursively; fields without an env tag are left alone.
func applyEnvOverrides(target interface{}) error {
	value := reflect.ValueOf(target)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}

	structType := value.Type()
	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)

		if field.Kind() == reflect.Struct {
			if err := applyEnvOverrides(field.Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		tag := structType.Field(i).Tag.Get("env")
		if tag == "" {
			continue
		}

		raw, ok := os.LookupEnv(tag)
		if !ok {
			continue
		}

		if err := setField(field, raw); err != nil {
			return fmt.Errorf("%s: %w", tag, err)
		}
	}

	return nil
}

// setField converts the raw env value to the field's kind. Only the kinds the
// Config struct uses are supported.
func setField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", raw)
		}
		field.SetInt(int64(n))
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("expected a boolean, got %q", raw)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("overriding %s fields is not supported", field.Kind())
	}
	return nil
}
