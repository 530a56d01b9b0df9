package command

import (
	"errors"
	"testing"

	"github.com/gocord/gocord/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func requireCode(t *testing.T, err error, code errorx.Code) {
	t.Helper()
	var e errorx.Error
	require.True(t, errors.As(err, &e), "expected errorx error, got %v", err)
	require.Equal(t, code, e.Code)
}

func TestCompileErrors(t *testing.T) {
	testcases := []struct {
		name     string
		selector string
	}{
		{"star at end", "foo*"},
		{"star without block", "*foo"},
		{"star inside block", "|na*me/str|"},
		{"slash outside block", "a/b"},
		{"missing type separator", "|name|"},
		{"two separators", "|a/b/c|"},
		{"escape at end", "foo;"},
		{"unterminated block", "|name/str"},
		{"adjacent blocks", "|a/str||b/str|"},
		{"duplicate names", "|a/str| |a/int|"},
		{"unknown type", "|a/decimal|"},
		{"required after optional", "|a/str| *|b/str|"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.selector)
			requireCode(t, err, errorx.ParseError)
		})
	}
}

func TestPatternRequiredAndOptional(t *testing.T) {
	p, err := Compile("*|mention/str| |time/int|")
	require.NoError(t, err)

	args, ok, err := p.Parse("bob 10")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Args{"mention": "bob", "time": 10}, args)

	args, ok, err = p.Parse("bob")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Args{"mention": "bob"}, args)

	_, ok = p.Match("")
	require.True(t, ok) // one value is still captured, even if empty
}

func TestPatternEscapedLiteral(t *testing.T) {
	p, err := Compile("*|num1/float| ;* *|num2/float|")
	require.NoError(t, err)

	args, ok, err := p.Parse("2.5 * 4.0")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Args{"num1": 2.5, "num2": 4.0}, args)

	_, ok = p.Match("2.5 plus 4.0")
	require.False(t, ok)
}

func TestPatternLeadingLiteral(t *testing.T) {
	p, err := Compile("by |days/int|")
	require.NoError(t, err)

	args, ok, err := p.Parse("by 7")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Args{"days": 7}, args)
}

func TestPatternCastFailure(t *testing.T) {
	p, err := Compile("*|count/int|")
	require.NoError(t, err)

	_, ok, err := p.Parse("many")
	require.True(t, ok)
	requireCode(t, err, errorx.CannotCastTypes)
}

func TestPatternYesNo(t *testing.T) {
	p, err := Compile("*|confirm/yn|")
	require.NoError(t, err)

	args, _, err := p.Parse("yes")
	require.NoError(t, err)
	require.Equal(t, Args{"confirm": true}, args)

	args, _, err = p.Parse("Nope")
	require.NoError(t, err)
	require.Equal(t, Args{"confirm": false}, args)
}

func TestPatternEmptySelector(t *testing.T) {
	p, err := Compile("")
	require.NoError(t, err)

	_, ok := p.Match("")
	require.True(t, ok)

	_, ok = p.Match("anything")
	require.False(t, ok)
}

func TestPatternLiteralOnly(t *testing.T) {
	p, err := Compile("status")
	require.NoError(t, err)

	values, ok := p.Match("status")
	require.True(t, ok)
	require.Empty(t, values)

	_, ok = p.Match("status please")
	require.False(t, ok)
}
