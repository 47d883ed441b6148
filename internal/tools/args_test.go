package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// fromJSON 模拟真实到达形态：参数总是经 JSON 解码而来
func fromJSON(t *testing.T, raw string) Args {
	t.Helper()
	var args Args
	require.NoError(t, json.Unmarshal([]byte(raw), &args))
	return args
}

func TestArgsRequiredString(t *testing.T) {
	args := fromJSON(t, `{"token":"tk","n":1}`)

	s, err := args.String("token")
	require.NoError(t, err)
	require.Equal(t, "tk", s)

	_, err = args.String("missing")
	require.ErrorContains(t, err, "missing required argument")

	_, err = args.String("n")
	require.ErrorContains(t, err, "must be a string")
}

func TestArgsOptionalStringKeepsFalsyValues(t *testing.T) {
	args := fromJSON(t, `{"name":""}`)

	p, err := args.OptionalString("name")
	require.NoError(t, err)
	require.NotNil(t, p, "explicit empty string is a provided value")
	require.Equal(t, "", *p)

	p, err = args.OptionalString("absent")
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestArgsOptionalInt(t *testing.T) {
	args := fromJSON(t, `{"order":0,"bad":1.5,"str":"7"}`)

	p, err := args.OptionalInt("order")
	require.NoError(t, err)
	require.Equal(t, 0, *p)

	_, err = args.OptionalInt("bad")
	require.ErrorContains(t, err, "must be an integer")

	_, err = args.OptionalInt("str")
	require.ErrorContains(t, err, "must be an integer")

	p, err = args.OptionalInt("absent")
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestArgsIntDefault(t *testing.T) {
	args := fromJSON(t, `{"gender":2}`)

	v, err := args.IntDefault("gender", 1)
	require.NoError(t, err)
	require.Equal(t, 2, v)

	v, err = args.IntDefault("status", 1)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestArgsBoolTriState(t *testing.T) {
	args := fromJSON(t, `{"yes":true,"no":false}`)

	p, err := args.OptionalBool("yes")
	require.NoError(t, err)
	require.True(t, *p)

	p, err = args.OptionalBool("no")
	require.NoError(t, err)
	require.False(t, *p, "explicit false is a provided value")

	p, err = args.OptionalBool("absent")
	require.NoError(t, err)
	require.Nil(t, p)

	v, err := args.BoolDefault("absent", true)
	require.NoError(t, err)
	require.True(t, v)
}

func TestArgsStringSlice(t *testing.T) {
	args := fromJSON(t, `{"ids":["a","b"],"mixed":["a",1]}`)

	ids, err := args.StringSlice("ids")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, ids)

	_, err = args.StringSlice("mixed")
	require.ErrorContains(t, err, "array of strings")

	_, err = args.StringSlice("absent")
	require.ErrorContains(t, err, "missing required argument")

	opt, err := args.OptionalStringSlice("absent")
	require.NoError(t, err)
	require.Nil(t, opt)
}
