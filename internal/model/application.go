// Package model defines the domain records for one loan application review
// session: the fetched application bundle, the operational team reviews, and
// the reviewer's decision.
package model

// Bundle is one loan application under review. It is immutable once fetched;
// a reload replaces it wholesale.
type Bundle struct {
	RefID    string
	Employee Employee
	Loan     Loan
	Reviews  []Review
}

// Access returns the reviewer identity embedded in the bundle. Every OTP
// call after the initial fetch carries the access user ID.
func (b Bundle) Access() AccessIdentity {
	return AccessIdentity{
		UserID: b.Employee.AccessUserID,
		Name:   b.Employee.AccessUserName,
		Mobile: b.Employee.AccessUserMobile,
	}
}

// AccessIdentity identifies the reviewing officer opening the link.
type AccessIdentity struct {
	UserID string
	Name   string
	Mobile string
}

// Employee holds the applicant's profile as supplied by the backend. Wire
// values are kept as strings; display formatting happens at render time.
type Employee struct {
	FullName        string
	ApplicationID   string
	EmployeeID      string
	DateOfBirth     string
	NID             string
	Qualification   string
	MaritalStatus   string
	EmployeeType    string
	Designation     string
	Department      string
	DivisionHead    string
	JoiningDate     string
	ApplicationDate string
	OrgName         string
	MobileNumber    string
	Email           string
	Photo           string

	AccessUserID     string
	AccessUserName   string
	AccessUserMobile string
}

// Loan holds the requested facility. Numeric fields stay in wire form; a
// malformed number renders raw rather than failing the page.
type Loan struct {
	Amount       string
	TenorMonths  string
	MonthlyEMI   string
	InterestRate string
	DBR          string

	BuildingConstruction     bool
	FlatExtensionRenovation  bool
	LandBuildingConstruction bool
	ReadymadeFlat            bool
}

// Purpose is one loan purpose flag with its display label.
type Purpose struct {
	Label string
}

// Purposes returns the labels for the purpose flags that are set, in the
// fixed display order.
func (l Loan) Purposes() []Purpose {
	var out []Purpose
	if l.BuildingConstruction {
		out = append(out, Purpose{Label: "Building Construction"})
	}
	if l.FlatExtensionRenovation {
		out = append(out, Purpose{Label: "Flat/Extension/Renovation"})
	}
	if l.LandBuildingConstruction {
		out = append(out, Purpose{Label: "Land & Building"})
	}
	if l.ReadymadeFlat {
		out = append(out, Purpose{Label: "Readymade Flat"})
	}
	return out
}
