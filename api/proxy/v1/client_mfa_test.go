package proxyv1

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// The proxy depends on these exact field names; renaming a tag is a wire
// format break.
func TestStartLoginRequestWireFormat(t *testing.T) {
	var req StartLoginRequest
	err := json.Unmarshal([]byte(`{"pubkey":"AAA","location_id":7,"method":"totp"}`), &req)
	require.NoError(t, err)
	require.Equal(t, "AAA", req.PublicKey)
	require.Equal(t, int64(7), req.LocationID)
	require.Equal(t, "totp", req.Method)
}

func TestFinishLoginResponseWireFormat(t *testing.T) {
	out, err := json.Marshal(&FinishLoginResponse{PresharedKey: "psk"})
	require.NoError(t, err)
	require.JSONEq(t, `{"preshared_key":"psk"}`, string(out))
}

func TestServiceDesc(t *testing.T) {
	require.Equal(t, "proxy.v1.ClientMfaService", ClientMfaService_ServiceDesc.ServiceName)
	require.Len(t, ClientMfaService_ServiceDesc.Methods, 2)
	names := []string{
		ClientMfaService_ServiceDesc.Methods[0].MethodName,
		ClientMfaService_ServiceDesc.Methods[1].MethodName,
	}
	require.ElementsMatch(t, []string{"StartLogin", "FinishLogin"}, names)
}
