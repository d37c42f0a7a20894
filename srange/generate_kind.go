package srange

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"stepper/ds"
)

// GenerateKind parses textual bounds and step for the given kind, generates
// the sequence and formats every element back to text. Characters may be
// quoted ('a') and take an integer step.
func GenerateKind(kind Kind, start, end, step string) ([]string, error) {
	switch kind {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return generateIntegralText(kind, start, end, step)
	case KindChar:
		return generateCharText(start, end, step)
	case KindFloat32:
		return generateFloatText[float32](kind, start, end, step)
	case KindFloat64:
		return generateFloatText[float64](kind, start, end, step)
	}
	return nil, errors.Wrapf(ErrUnknownKind, `GenerateKind error with kind "%s"`, kind)
}

// FormatSequence renders elements the way a list prints in the fixture
// messages, e.g. [3, 5, 7].
func FormatSequence(elements []string) string {
	return "[" + strings.Join(elements, ", ") + "]"
}

func generateIntegralText(kind Kind, start, end, step string) ([]string, error) {
	values, err := parseInts(kind.BitSize(), start, end, step)
	if err != nil {
		return nil, errors.Wrapf(err, `generateIntegralText error parsing kind "%s"`, kind)
	}
	switch kind {
	case KindInt8:
		return generateIntegralAs[int8](values)
	case KindInt16:
		return generateIntegralAs[int16](values)
	case KindInt32:
		return generateIntegralAs[int32](values)
	case KindInt64:
		return generateIntegralAs[int64](values)
	}
	panic(ds.ErrUnreachableCode{Caller: "generateIntegralText", Value: kind})
}

func generateIntegralAs[T Integral](values [3]int64) ([]string, error) {
	sequence, err := Generate(T(values[0]), T(values[1]), T(values[2]))
	if err != nil {
		return nil, err
	}
	return lo.Map(
		sequence,
		func(t T, _ int) string {
			return strconv.FormatInt(int64(t), 10)
		},
	), nil
}

func generateCharText(start, end, step string) ([]string, error) {
	startRune, err := parseChar(start)
	if err != nil {
		return nil, errors.Wrap(err, "generateCharText error parsing start")
	}
	endRune, err := parseChar(end)
	if err != nil {
		return nil, errors.Wrap(err, "generateCharText error parsing end")
	}
	stepCount, err := strconv.Atoi(strings.TrimSpace(step))
	if err != nil {
		return nil, errors.Wrap(err, "generateCharText error parsing step")
	}
	sequence, err := GenerateChar(startRune, endRune, stepCount)
	if err != nil {
		return nil, err
	}
	return lo.Map(
		sequence,
		func(r rune, _ int) string {
			return string(r)
		},
	), nil
}

func generateFloatText[T float32 | float64](kind Kind, start, end, step string) ([]string, error) {
	bitSize := kind.BitSize()
	values := [3]T{}
	for i, s := range []string{start, end, step} {
		value, err := strconv.ParseFloat(strings.TrimSpace(s), bitSize)
		if err != nil {
			return nil, errors.Wrapf(err, `generateFloatText error parsing "%s" as %s`, s, kind)
		}
		values[i] = T(value)
	}
	sequence, err := Generate(values[0], values[1], values[2])
	if err != nil {
		return nil, err
	}
	return lo.Map(
		sequence,
		func(t T, _ int) string {
			return formatFloat(float64(t), bitSize)
		},
	), nil
}

func parseInts(bitSize int, start, end, step string) ([3]int64, error) {
	values := [3]int64{}
	for i, s := range []string{start, end, step} {
		value, err := strconv.ParseInt(strings.TrimSpace(s), 10, bitSize)
		if err != nil {
			return values, errors.Wrapf(err, `parseInts error parsing "%s"`, s)
		}
		values[i] = value
	}
	return values, nil
}

func parseChar(s string) (rune, error) {
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.Errorf(`parseChar error: expected a single character, got "%s"`, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// formatFloat keeps a trailing ".0" on whole numbers so that 4.0 reads as a
// float next to integral sequences.
func formatFloat(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if strings.ContainsAny(s, ".IN") {
		return s
	}
	return s + ".0"
}
