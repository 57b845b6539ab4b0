// Package main runs a stub loan service for local development. It serves
// one canned application and a full OTP round trip, enforcing the same
// request signatures the production service checks.
package main

import (
	"crypto/rand"
	"flag"
	"log/slog"
	"math/big"
	"net/http"
	"os"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/jahidblackrose/mtb-loan-approver/internal/gateway"
	"github.com/jahidblackrose/mtb-loan-approver/internal/signer"
)

type otpRequest struct {
	RefID   string `json:"refId"`
	EmpID   string `json:"empId"`
	Action  string `json:"action,omitempty"`
	Remarks string `json:"remarks,omitempty"`
	OTP     string `json:"otp,omitempty"`
	APICode string `json:"apiCode"`
}

type server struct {
	mu      sync.Mutex
	otps    map[string]string
	bundles map[string]*gateway.BundleResponse
	otpLen  int
}

func newServer() *server {
	return &server{
		otps:    make(map[string]string),
		bundles: map[string]*gateway.BundleResponse{"2025000004": sampleBundle()},
		otpLen:  6,
	}
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	s := newServer()
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			slog.Info("request", "uri", v.URI, "status", v.Status)
			return nil
		},
	}))

	api := e.Group("/ekyc/api/v1/CustomerNotification")
	api.POST("/"+signer.EndpointFetchAllData, s.fetchAllData)
	api.POST("/"+signer.EndpointGenerateOTP, s.generateOTP)
	api.POST("/"+signer.EndpointResendOTP, s.resendOTP)
	api.POST("/"+signer.EndpointValidateOTP, s.validateOTP)

	slog.Info("Stub loan service listening", "addr", *addr)
	if err := e.Start(*addr); err != nil && err != http.ErrServerClosed {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

// checkSignature verifies the request's apiCode for the endpoint. All
// responses are HTTP 200; failures travel in the Status field.
func checkSignature(req otpRequest, endpoint string) bool {
	return req.APICode == signer.Sign(req.RefID, endpoint)
}

func (s *server) fetchAllData(c echo.Context) error {
	var req otpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, gateway.BundleResponse{Status: "400", Message: "Malformed request"})
	}
	if !checkSignature(req, signer.EndpointFetchAllData) {
		return c.JSON(http.StatusOK, gateway.BundleResponse{Status: "401", Message: "Invalid API code"})
	}

	bundle, ok := s.bundles[req.RefID]
	if !ok {
		return c.JSON(http.StatusOK, gateway.BundleResponse{Status: "404", Message: "Application not found"})
	}
	return c.JSON(http.StatusOK, bundle)
}

func (s *server) generateOTP(c echo.Context) error {
	var req otpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, gateway.OTPResponse{Status: "400", Message: "Malformed request"})
	}
	if !checkSignature(req, signer.EndpointGenerateOTP) {
		return c.JSON(http.StatusOK, gateway.OTPResponse{Status: "401", Message: "Invalid API code"})
	}
	if _, ok := s.bundles[req.RefID]; !ok {
		return c.JSON(http.StatusOK, gateway.OTPResponse{Status: "404", Message: "Application not found"})
	}
	if req.Remarks == "" {
		return c.JSON(http.StatusOK, gateway.OTPResponse{Status: "400", Message: "Remarks are required"})
	}

	return s.issueOTP(c, req, "An OTP has been sent to the reviewer's registered mobile number")
}

func (s *server) resendOTP(c echo.Context) error {
	var req otpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, gateway.OTPResponse{Status: "400", Message: "Malformed request"})
	}
	if !checkSignature(req, signer.EndpointResendOTP) {
		return c.JSON(http.StatusOK, gateway.OTPResponse{Status: "401", Message: "Invalid API code"})
	}
	s.mu.Lock()
	_, pending := s.otps[req.RefID]
	s.mu.Unlock()
	if !pending {
		return c.JSON(http.StatusOK, gateway.OTPResponse{Status: "400", Message: "No OTP pending for this application"})
	}

	return s.issueOTP(c, req, "A new OTP has been sent to the reviewer's registered mobile number")
}

func (s *server) validateOTP(c echo.Context) error {
	var req otpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, gateway.OTPResponse{Status: "400", Message: "Malformed request"})
	}
	if !checkSignature(req, signer.EndpointValidateOTP) {
		return c.JSON(http.StatusOK, gateway.OTPResponse{Status: "401", Message: "Invalid API code"})
	}

	s.mu.Lock()
	expected, pending := s.otps[req.RefID]
	if pending && req.OTP == expected {
		delete(s.otps, req.RefID)
		s.mu.Unlock()
		return c.JSON(http.StatusOK, gateway.OTPResponse{Status: "200", Message: "OTP verified"})
	}
	s.mu.Unlock()

	return c.JSON(http.StatusOK, gateway.OTPResponse{Status: "400", Message: "Invalid OTP"})
}

func (s *server) issueOTP(c echo.Context, req otpRequest, message string) error {
	code, err := randomCode(s.otpLen)
	if err != nil {
		return c.JSON(http.StatusOK, gateway.OTPResponse{Status: "500", Message: "Failed to generate OTP"})
	}

	s.mu.Lock()
	s.otps[req.RefID] = code
	s.mu.Unlock()

	// There is no SMS gateway here; the code lands in the log instead.
	slog.Info("OTP issued", "ref", req.RefID, "emp", req.EmpID, "otp", code)
	return c.JSON(http.StatusOK, gateway.OTPResponse{Status: "200", Message: message})
}

// randomCode builds an n-digit numeric code.
func randomCode(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + v.Int64())
	}
	return string(digits), nil
}

func sampleBundle() *gateway.BundleResponse {
	return &gateway.BundleResponse{
		Status: "200",
		EmployeeDataList: []gateway.EmployeeRecord{
			{
				FullName:                "Mohammad Rafiqul Islam",
				ApplicationID:           "MTB-2019-0847",
				EmployeeID:              "EMP-117",
				DateOfBirth:             "1988-03-14",
				NID:                     "1988321456789",
				AcademicQualification:   "MBA",
				MaritalStatus:           "Married",
				EmployeeType:            "Permanent",
				Designation:             "Senior Officer",
				Department:              "Retail Banking",
				DivisionHead:            "Mr. Kamrul Hasan",
				JoiningDate:             "2012-07-01",
				ApplicationDate:         "2025-01-02",
				OrgName:                 "Mutual Trust Bank PLC",
				MobileNumber:            "+8801712345678",
				Email:                   "rafiqul.islam@mutualtrustbank.com",
				LoanAmount:              "2500000",
				InterestRate:            "9.5",
				LoanTenure:              "120",
				MonthlyEmi:              "31250",
				Dbr:                     "38",
				ReadymadeFlat:           "1",
				FlatExtensionRenovation: "0",
				AccessUserID:            "AGM-042",
				AccessUserName:          "Mr. Shahid Mahmud (AGM)",
				AccessUserMobile:        "+8801811223344",
			},
		},
		ReviewDataList: []gateway.ReviewRecord{
			{
				Title:    "Branch Recommendation",
				SubTitle: "Dhanmondi Branch",
				ByName:   "Mr. Shahid Mahmud (AGM)",
				Status:   "Approved",
				ByDate:   "2025-01-05",
				ByRemark: "Recommended for approval based on repayment history",
			},
			{
				Title:     "CIB Verification",
				ByName:    "CIB Cell",
				Status:    "Approved",
				ByDate:    "2025-01-06",
				CibStatus: "Clean",
				CibDate:   "2025-01-06",
			},
			{
				Title:  "Credit Committee",
				Status: "Pending",
			},
		},
	}
}
