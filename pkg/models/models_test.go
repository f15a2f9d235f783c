package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeSerialization(t *testing.T) {
	raw, err := json.Marshal(Success(KeypairResponse{
		PublicKey: "pub",
		SecretKey: "sec",
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"public_key":"pub","secret_key":"sec"}}`, string(raw))

	raw, err = json.Marshal(Failure("boom"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"boom"}`, string(raw))
}

func TestCreateTokenRequestWireNames(t *testing.T) {
	// mintAuthority stays camelCase on the wire for client compatibility.
	var req CreateTokenRequest
	err := json.Unmarshal([]byte(`{"mintAuthority":"auth","mint":"mint","decimals":9}`), &req)
	require.NoError(t, err)

	assert.Equal(t, "auth", req.MintAuthority)
	assert.Equal(t, "mint", req.Mint)
	assert.Equal(t, uint8(9), req.Decimals)
}
