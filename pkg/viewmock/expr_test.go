package viewmock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldName(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    string
		wantErr []error
	}{
		{"bare name", "Name", "Name", nil},
		{"padded name", "  Name ", "Name", nil},
		{"selector", "vm.Name", "Name", nil},
		{"parenthesized selector", "(vm).Name", "Name", nil},
		{"conversion", "string(vm.Name)", "Name", nil},
		{"nested conversion", "any(string(vm.Name))", "Name", nil},
		{"qualified conversion", "time.Duration(vm.Timeout)", "Timeout", nil},
		{"pointer conversion", "(*int)(vm.Count)", "Count", nil},
		{"index", "vm.Items[0]", "", []error{ErrUnsupportedExpression, ErrDynamicComponent}},
		{"map index", `vm.Items["key"]`, "", []error{ErrUnsupportedExpression, ErrDynamicComponent}},
		{"converted index", `string(any(vm.Items["key"]))`, "", []error{ErrDynamicComponent}},
		{"nested selector", "vm.Owner.Name", "", []error{ErrUnsupportedExpression}},
		{"method call", "vm.Refresh()", "", []error{ErrUnsupportedExpression}},
		{"method with field argument", "vm.Format(vm.Name)", "", []error{ErrUnsupportedExpression}},
		{"builtin", "len(vm.Items)", "", []error{ErrUnsupportedExpression}},
		{"binary", "vm.Count + 1", "", []error{ErrUnsupportedExpression}},
		{"literal", `"Name"`, "", []error{ErrUnsupportedExpression}},
		{"syntax error", "vm.(", "", []error{ErrUnsupportedExpression}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FieldName(tt.expr)
			if len(tt.wantErr) > 0 {
				for _, want := range tt.wantErr {
					require.ErrorIs(t, err, want)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMethodName(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    string
		wantErr bool
	}{
		{"zero arg call", "vm.Refresh()", "Refresh", false},
		{"parenthesized call", "(vm.Refresh)()", "Refresh", false},
		{"call with args", "vm.Format(1)", "", true},
		{"field read", "vm.Name", "", true},
		{"bare name", "Refresh", "", true},
		{"function call", "Refresh()", "", true},
		{"syntax error", "vm.Refresh(", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MethodName(tt.expr)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNotAMethodExpression)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
