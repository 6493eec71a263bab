package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionUpdate_DecodePresence(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		wantDescription Nullable[string]
		wantCategory    Nullable[string]
		wantEmpty       bool
	}{
		{name: "empty object", body: `{}`, wantEmpty: true},
		{name: "explicit null clears", body: `{"description":null}`, wantDescription: Null[string]()},
		{name: "value", body: `{"category":"food"}`, wantCategory: NullableOf("food")},
		{name: "both", body: `{"description":"lunch","category":null}`, wantDescription: NullableOf("lunch"), wantCategory: Null[string]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u TransactionUpdate
			require.NoError(t, json.Unmarshal([]byte(tt.body), &u))

			assert.Equal(t, tt.wantDescription, u.Description)
			assert.Equal(t, tt.wantCategory, u.Category)
			assert.Equal(t, tt.wantEmpty, u.IsEmpty())
		})
	}
}

func TestTransactionUpdate_NullForNonNullableIsAbsent(t *testing.T) {
	var u TransactionUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"name":null,"amount":null}`), &u))

	assert.Nil(t, u.Name)
	assert.Nil(t, u.Amount)
	assert.True(t, u.IsEmpty())
}

func TestNullable_InvalidValue(t *testing.T) {
	var u TransactionUpdate
	assert.Error(t, json.Unmarshal([]byte(`{"description":42}`), &u))
}

func TestNullable_Marshal(t *testing.T) {
	b, err := json.Marshal(TransactionUpdate{Description: Null[string](), Category: NullableOf("rent")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":null,"category":"rent"}`, string(b))

	b, err = json.Marshal(TransactionUpdate{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))
}

func TestNullable_IsNull(t *testing.T) {
	assert.True(t, Null[string]().IsNull())
	assert.False(t, NullableOf("x").IsNull())
	assert.False(t, Nullable[string]{}.IsNull())
}
