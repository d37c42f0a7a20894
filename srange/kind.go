package srange

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type Kind string

const (
	KindInt8    Kind = "int8"
	KindInt16   Kind = "int16"
	KindInt32   Kind = "int32"
	KindInt64   Kind = "int64"
	KindChar    Kind = "char"
	KindFloat32 Kind = "float32"
	KindFloat64 Kind = "float64"
)

var kindAliases = map[string]Kind{
	"byte":   KindInt8,
	"short":  KindInt16,
	"int":    KindInt32,
	"long":   KindInt64,
	"rune":   KindChar,
	"float":  KindFloat32,
	"double": KindFloat64,
}

func Kinds() []Kind {
	return []Kind{
		KindInt8,
		KindInt16,
		KindInt32,
		KindInt64,
		KindChar,
		KindFloat32,
		KindFloat64,
	}
}

// ParseKind accepts the Go type names as well as byte, short, int, long,
// rune, float and double.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if lo.Contains(Kinds(), Kind(name)) {
		return Kind(name), nil
	}
	if kind, ok := kindAliases[name]; ok {
		return kind, nil
	}
	return "", errors.Wrapf(ErrUnknownKind, `ParseKind error parsing "%s"`, s)
}

func (r Kind) BitSize() int {
	switch r {
	case KindInt8:
		return 8
	case KindInt16:
		return 16
	case KindInt32, KindChar, KindFloat32:
		return 32
	case KindInt64, KindFloat64:
		return 64
	}
	return 0
}
