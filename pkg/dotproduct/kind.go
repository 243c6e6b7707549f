// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dotproduct

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// Kind enumerates the element kinds supported by the engine.
//
// The set is closed: a Kind obtained from KindFromName, KindOf or KindForDType is
// either one of the values below or InvalidKind.
type Kind int

const (
	InvalidKind Kind = iota
	Int32            // int, 32-bit signed integer.
	Int64            // long, 64-bit signed integer.
	Int16            // short, 16-bit signed integer.
	Int8             // char, 8-bit signed integer.
	Float32          // float, single precision.
	Float64          // double, double precision.

	numKinds
)

// Kinds lists all valid kinds, in declaration order.
var Kinds = []Kind{Int32, Int64, Int16, Int8, Float32, Float64}

// ErrUnsupportedKind is wrapped by the error returned by KindFromName for unknown names.
var ErrUnsupportedKind = errors.New("unsupported data type")

// Element is the generics constraint for the Go types of the supported kinds.
type Element interface {
	int8 | int16 | int32 | int64 | float32 | float64
}

var (
	kindTags   = [numKinds]string{"", "int", "long", "short", "char", "float", "double"}
	kindLabels = [numKinds]string{"", "Int", "Long Long", "Short", "Char", "Float", "Double"}
	kindDTypes = [numKinds]dtypes.DType{
		dtypes.InvalidDType,
		dtypes.Int32, dtypes.Int64, dtypes.Int16, dtypes.Int8,
		dtypes.Float32, dtypes.Float64,
	}
)

// IsValid returns whether k is one of the supported kinds.
func (k Kind) IsValid() bool {
	return k > InvalidKind && k < numKinds
}

// String implements fmt.Stringer. Valid kinds use the name of the corresponding DType.
func (k Kind) String() string {
	if !k.IsValid() {
		if k == InvalidKind {
			return "InvalidKind"
		}
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return k.DType().String()
}

// Tag returns the short name used in the text input format ("int", "long", ...),
// or "" for invalid kinds.
func (k Kind) Tag() string {
	if !k.IsValid() {
		return ""
	}
	return kindTags[k]
}

// Label returns the name used when reporting results ("Int", "Long Long", ...),
// or "" for invalid kinds.
func (k Kind) Label() string {
	if !k.IsValid() {
		return ""
	}
	return kindLabels[k]
}

// DType returns the corresponding dtypes.DType, or dtypes.InvalidDType.
func (k Kind) DType() dtypes.DType {
	if !k.IsValid() {
		return dtypes.InvalidDType
	}
	return kindDTypes[k]
}

// IsFloat returns whether k is a floating point kind.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// IsInt returns whether k is an integer kind.
func (k Kind) IsInt() bool {
	return k == Int32 || k == Int64 || k == Int16 || k == Int8
}

// KindForDType returns the Kind for the given dtype, or InvalidKind if the dtype
// is not supported.
func KindForDType(dtype dtypes.DType) Kind {
	for _, k := range Kinds {
		if kindDTypes[k] == dtype {
			return k
		}
	}
	return InvalidKind
}

// KindOf returns the Kind of the Go type T.
func KindOf[T Element]() Kind {
	var zero T
	return KindForDType(dtypes.FromGoType(reflect.TypeOf(zero)))
}

// KindFromName parses either a text tag ("int", "long", "short", "char", "float", "double")
// or a DType name ("Int32", "float64", ...; case-insensitive).
//
// Unknown names return an error wrapping ErrUnsupportedKind.
func KindFromName(name string) (Kind, error) {
	for _, k := range Kinds {
		if name == kindTags[k] {
			return k, nil
		}
	}
	for _, k := range Kinds {
		if strings.EqualFold(name, k.DType().String()) {
			return k, nil
		}
	}
	return InvalidKind, errors.Wrapf(ErrUnsupportedKind, "%q", name)
}
