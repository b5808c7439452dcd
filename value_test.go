package crafty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueKindPredicates(t *testing.T) {
	assert.True(t, Nil.IsNil())
	assert.True(t, BoolValue(true).IsBool())
	assert.True(t, IntegerValue(1).IsInteger())
	assert.True(t, FloatValue(1).IsFloat())
	assert.True(t, StringValue("s").IsString())
	assert.True(t, IntegerValue(1).IsNumber())
	assert.True(t, FloatValue(1).IsNumber())
	assert.False(t, StringValue("s").IsNumber())
}

func TestValueIsTrue(t *testing.T) {
	assert.True(t, BoolValue(true).IsTrue())
	assert.False(t, BoolValue(false).IsTrue())
	// non-boolean values are never truthy by themselves; callers that need
	// an error instead of silent false use requireBoolean.
	assert.False(t, IntegerValue(1).IsTrue())
	assert.False(t, Nil.IsTrue())
}

func TestValueString(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"nil", Nil, "nil"},
		{"true", BoolValue(true), "true"},
		{"false", BoolValue(false), "false"},
		{"integer", IntegerValue(42), "42"},
		{"negative integer", IntegerValue(-7), "-7"},
		{"float", FloatValue(3.5), "3.5"},
		{"whole float", FloatValue(2), "2"},
		{"string", StringValue("hi"), "hi"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.String())
		})
	}
}

func TestValueAsFloatPromotes(t *testing.T) {
	assert.Equal(t, 3.0, IntegerValue(3).AsFloat())
	assert.Equal(t, 3.5, FloatValue(3.5).AsFloat())
}

func TestValueAsFloatPanicsOnNonNumeric(t *testing.T) {
	assert.Panics(t, func() { StringValue("x").AsFloat() })
}

func TestValueEqualValueTo(t *testing.T) {
	assert.True(t, IntegerValue(2).EqualValueTo(FloatValue(2)))
	assert.True(t, StringValue("a").EqualValueTo(StringValue("a")))
	assert.False(t, StringValue("a").EqualValueTo(StringValue("b")))
	assert.True(t, Nil.EqualValueTo(Nil))
	assert.True(t, BoolValue(true).EqualValueTo(BoolValue(true)))
	assert.False(t, BoolValue(true).EqualValueTo(BoolValue(false)))
	// mismatched kinds are not this method's concern: callers reject them
	// as a type error before ever calling EqualValueTo.
	assert.False(t, BoolValue(true).EqualValueTo(StringValue("true")))
}
