package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahidblackrose/mtb-loan-approver/internal/common"
	"github.com/jahidblackrose/mtb-loan-approver/internal/model"
	"github.com/jahidblackrose/mtb-loan-approver/internal/signer"
)

// capture holds what the test server saw for one request.
type capture struct {
	path string
	body map[string]string
}

func newCaptureServer(t *testing.T, status int, response string) (*httptest.Server, *capture) {
	t.Helper()
	cap := &capture{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		cap.path = r.URL.Path
		cap.body = map[string]string{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&cap.body))

		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	return srv, cap
}

func TestClientFetchBundle(t *testing.T) {
	response := `{
		"Status": "200",
		"Message": "ok",
		"EmployeeDataList": [{
			"FullName": "Mohammad Rafiqul Islam",
			"EmployeeId": "MTB-2019-0847",
			"LoanAmount": "5000000",
			"BuildingConstruction": "1",
			"accessuserid": "EMP-117",
			"accessusername": "Mr. Shahid Mahmud (AGM)"
		}],
		"ReviewDataList": [{
			"Title": "HR Verification",
			"SubTitle": "Human Resources",
			"ByName": "Ms. Fatima Begum",
			"Status": "Approved",
			"ByDate": "2024-12-28",
			"ByRemark": "Service record verified."
		}]
	}`

	srv, cap := newCaptureServer(t, http.StatusOK, response)
	client := NewClient(srv.URL)

	resp, err := client.FetchBundle(context.Background(), "2025000004")
	require.NoError(t, err)
	require.True(t, resp.OK())

	assert.Equal(t, "/ekyc/api/v1/CustomerNotification/get-fetch-all-date-mgt", cap.path)
	assert.Equal(t, "2025000004", cap.body["refId"])
	assert.Equal(t, signer.Sign("2025000004", signer.EndpointFetchAllData), cap.body["apiCode"])

	require.Len(t, resp.EmployeeDataList, 1)
	assert.Equal(t, "Mohammad Rafiqul Islam", resp.EmployeeDataList[0].FullName)
	assert.Equal(t, "EMP-117", resp.EmployeeDataList[0].AccessUserID)
	require.Len(t, resp.ReviewDataList, 1)
	assert.Equal(t, "HR Verification", resp.ReviewDataList[0].Title)
}

func TestClientGenerateOTP(t *testing.T) {
	srv, cap := newCaptureServer(t, http.StatusOK, `{"Status":"200","Message":"OTP sent"}`)
	client := NewClient(srv.URL)

	resp, err := client.GenerateOTP(context.Background(), "2025000004", "EMP-117", model.ActionApprove, "Approved after verification")
	require.NoError(t, err)

	assert.True(t, resp.OK())
	assert.Equal(t, "OTP sent", resp.Message)
	assert.Equal(t, "/ekyc/api/v1/CustomerNotification/generate-otp-mgt", cap.path)
	assert.Equal(t, "A", cap.body["action"])
	assert.Equal(t, "EMP-117", cap.body["empId"])
	assert.Equal(t, "Approved after verification", cap.body["remarks"])
	assert.Equal(t, signer.Sign("2025000004", signer.EndpointGenerateOTP), cap.body["apiCode"])
}

func TestClientGenerateOTPRejectAction(t *testing.T) {
	srv, cap := newCaptureServer(t, http.StatusOK, `{"Status":"200","Message":"OTP sent"}`)
	client := NewClient(srv.URL)

	_, err := client.GenerateOTP(context.Background(), "2025000004", "EMP-117", model.ActionReject, "DBR too high")
	require.NoError(t, err)
	assert.Equal(t, "R", cap.body["action"])
}

func TestClientResendOTP(t *testing.T) {
	srv, cap := newCaptureServer(t, http.StatusOK, `{"Status":"200","Message":"OTP resent"}`)
	client := NewClient(srv.URL)

	resp, err := client.ResendOTP(context.Background(), "2025000004", "EMP-117")
	require.NoError(t, err)

	assert.True(t, resp.OK())
	assert.Equal(t, "/ekyc/api/v1/CustomerNotification/regenerate-otp-mgt", cap.path)
	assert.Equal(t, signer.Sign("2025000004", signer.EndpointResendOTP), cap.body["apiCode"])
}

func TestClientValidateOTP(t *testing.T) {
	srv, cap := newCaptureServer(t, http.StatusOK, `{"Status":"200","Message":"OTP verified"}`)
	client := NewClient(srv.URL)

	resp, err := client.ValidateOTP(context.Background(), "2025000004", "EMP-117", "123456")
	require.NoError(t, err)

	assert.True(t, resp.OK())
	assert.Equal(t, "/ekyc/api/v1/CustomerNotification/validate-otp-mgt", cap.path)
	assert.Equal(t, "123456", cap.body["otp"])
	assert.Equal(t, signer.Sign("2025000004", signer.EndpointValidateOTP), cap.body["apiCode"])
}

func TestClientApplicationLevelFailureIsNotAnError(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusOK, `{"Status":"400","Message":"Invalid OTP"}`)
	client := NewClient(srv.URL)

	resp, err := client.ValidateOTP(context.Background(), "2025000004", "EMP-117", "000000")
	require.NoError(t, err)

	assert.False(t, resp.OK())
	assert.Equal(t, "Invalid OTP", resp.Message)
}

func TestClientTransportFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
	}{
		{name: "server error", status: http.StatusInternalServerError, response: "boom"},
		{name: "not found", status: http.StatusNotFound, response: "no such endpoint"},
		{name: "malformed json", status: http.StatusOK, response: "{not json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newCaptureServer(t, tt.status, tt.response)
			client := NewClient(srv.URL)

			_, err := client.FetchBundle(context.Background(), "2025000004")
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrGatewayTransport)
		})
	}
}

func TestClientUnreachableHost(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	_, err := client.FetchBundle(context.Background(), "2025000004")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrGatewayTransport)
}

func TestClientContextCancellation(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusOK, `{"Status":"200"}`)
	client := NewClient(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchBundle(ctx, "2025000004")
	require.Error(t, err)
}
