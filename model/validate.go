package model

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator"
	"github.com/google/uuid"

	streamconv "github.com/reoring/streamconv"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator configured for the model types:
// wire names in error namespaces, text types projected to their string or
// time form, and the reqtype rule.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			return field.Interface().(URL).String()
		}, URL{})
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			return field.Interface().(Timestamp).Time()
		}, Timestamp{})
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			return field.Interface().(uuid.UUID).String()
		}, uuid.UUID{})
		_ = v.RegisterValidation("reqtype", func(fl validator.FieldLevel) bool {
			return RequestType(fl.Field().String()).Known()
		})
		validate = v
	})
	return validate
}

// Validate checks the typed invariants of r and reports violations as Issues.
func (r *Request) Validate() error {
	if r == nil {
		return streamconv.AppendIssues(nil, streamconv.NewIssue("/", streamconv.CodeRequired, nil))
	}
	return validationIssues(Validator().Struct(r))
}

// Validate checks the typed invariants of u; User is not part of Request.
func (u *User) Validate() error {
	return validationIssues(Validator().Struct(u))
}

func validationIssues(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var iss streamconv.Issues
	for _, fe := range verrs {
		it := streamconv.NewIssue(namespaceToPointer(fe.Namespace()), tagCode(fe.Tag()), tagParams(fe))
		if cause, ok := fe.(error); ok {
			it.Cause = cause
		}
		iss = streamconv.AppendIssues(iss, it)
	}
	return iss
}

func tagCode(tag string) string {
	switch tag {
	case "required":
		return streamconv.CodeRequired
	case "reqtype":
		return streamconv.CodeInvalidEnum
	case "gte", "min":
		return streamconv.CodeTooSmall
	default:
		return streamconv.CodeInvalidFormat
	}
}

func tagParams(fe validator.FieldError) map[string]string {
	switch fe.Tag() {
	case "reqtype":
		tags := RequestTypes()
		allowed := make([]string, len(tags))
		for i, t := range tags {
			allowed[i] = string(t)
		}
		return map[string]string{"got": fmt.Sprint(fe.Value()), "allowed": strings.Join(allowed, ", ")}
	case "gte", "min":
		return map[string]string{"limit": fe.Param()}
	case "required":
		return map[string]string{"key": fe.Field()}
	default:
		return map[string]string{"format": fe.Tag()}
	}
}

// namespaceToPointer turns "Request.gifts[1].price" into "/gifts/1/price".
func namespaceToPointer(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 0 {
		parts = parts[1:]
	}
	b := &strings.Builder{}
	for _, p := range parts {
		name := p
		var idx []string
		if i := strings.IndexByte(p, '['); i >= 0 {
			name = p[:i]
			for _, s := range strings.Split(strings.TrimSuffix(p[i+1:], "]"), "][") {
				if _, err := strconv.Atoi(s); err == nil {
					idx = append(idx, s)
				}
			}
		}
		b.WriteString("/" + name)
		for _, s := range idx {
			b.WriteString("/" + s)
		}
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}
