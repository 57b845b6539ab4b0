package gateway

// statusOK is the application-level success status. A 2xx transport response
// with any other Status is an application-level failure, not a transport
// error.
const statusOK = "200"

// EmployeeRecord is the wire form of one applicant profile row. Field names
// follow the backend's casing, including the lowercase access identity keys.
type EmployeeRecord struct {
	FullName                 string `json:"FullName"`
	ApplicationID            string `json:"ApplicationId"`
	EmployeeID               string `json:"EmployeeId"`
	DateOfBirth              string `json:"DateOfBirth"`
	NID                      string `json:"Nid"`
	AcademicQualification    string `json:"AcademicQualification"`
	MaritalStatus            string `json:"MaritalStatus"`
	EmployeeType             string `json:"EmployeeType"`
	Designation              string `json:"Designation"`
	Department               string `json:"Department"`
	DivisionHead             string `json:"DivisionHead"`
	JoiningDate              string `json:"JoiningDate"`
	ApplicationDate          string `json:"ApplicationDate"`
	OrgName                  string `json:"OrgName"`
	MobileNumber             string `json:"MobileNumber"`
	Email                    string `json:"Email"`
	LoanAmount               string `json:"LoanAmount"`
	InterestRate             string `json:"InterestRate"`
	LoanTenure               string `json:"LoanTenure"`
	MonthlyEmi               string `json:"MonthlyEmi"`
	Dbr                      string `json:"Dbr"`
	BuildingConstruction     string `json:"BuildingConstruction"`
	FlatExtensionRenovation  string `json:"FlatExtensionRenovation"`
	LandBuildingConstruction string `json:"LandBuildingConstruction"`
	ReadymadeFlat            string `json:"ReadymadeFlat"`
	Photo                    string `json:"Photo,omitempty"`
	AccessUserID             string `json:"accessuserid"`
	AccessUserName           string `json:"accessusername"`
	AccessUserMobile         string `json:"accessusermobile"`
}

// AttachmentRecord is one document link on a review row.
type AttachmentRecord struct {
	Name string `json:"Name"`
	URL  string `json:"Url"`
}

// ReviewRecord is the wire form of one operational team review.
type ReviewRecord struct {
	Title       string             `json:"Title"`
	SubTitle    string             `json:"SubTitle"`
	ByName      string             `json:"ByName"`
	Status      string             `json:"Status"`
	ByDate      string             `json:"ByDate"`
	ByRemark    string             `json:"ByRemark"`
	Attachments []AttachmentRecord `json:"Attachments,omitempty"`
	CibStatus   string             `json:"CibStatus,omitempty"`
	CibDate     string             `json:"CibDate,omitempty"`
}

// BundleResponse is the fetch-bundle envelope.
type BundleResponse struct {
	Status           string           `json:"Status"`
	Message          string           `json:"Message"`
	EmployeeDataList []EmployeeRecord `json:"EmployeeDataList"`
	ReviewDataList   []ReviewRecord   `json:"ReviewDataList"`
}

// OK reports application-level success.
func (r *BundleResponse) OK() bool {
	return r != nil && r.Status == statusOK
}

// OTPResponse is the envelope shared by the three OTP operations.
type OTPResponse struct {
	Status  string `json:"Status"`
	Message string `json:"Message"`
}

// OK reports application-level success.
func (r *OTPResponse) OK() bool {
	return r != nil && r.Status == statusOK
}
