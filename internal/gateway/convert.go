package gateway

import (
	"github.com/jahidblackrose/mtb-loan-approver/internal/common"
	"github.com/jahidblackrose/mtb-loan-approver/internal/model"
)

// ToBundle converts a successful fetch response into the domain bundle.
// The first employee record is the applicant; the backend sends exactly one.
func ToBundle(refID string, resp *BundleResponse) (model.Bundle, error) {
	if resp == nil || len(resp.EmployeeDataList) == 0 {
		return model.Bundle{}, common.ErrEmptyBundle
	}

	emp := resp.EmployeeDataList[0]

	bundle := model.Bundle{
		RefID: refID,
		Employee: model.Employee{
			FullName:         emp.FullName,
			ApplicationID:    emp.ApplicationID,
			EmployeeID:       emp.EmployeeID,
			DateOfBirth:      emp.DateOfBirth,
			NID:              emp.NID,
			Qualification:    emp.AcademicQualification,
			MaritalStatus:    emp.MaritalStatus,
			EmployeeType:     emp.EmployeeType,
			Designation:      emp.Designation,
			Department:       emp.Department,
			DivisionHead:     emp.DivisionHead,
			JoiningDate:      emp.JoiningDate,
			ApplicationDate:  emp.ApplicationDate,
			OrgName:          emp.OrgName,
			MobileNumber:     emp.MobileNumber,
			Email:            emp.Email,
			Photo:            emp.Photo,
			AccessUserID:     emp.AccessUserID,
			AccessUserName:   emp.AccessUserName,
			AccessUserMobile: emp.AccessUserMobile,
		},
		Loan: model.Loan{
			Amount:                   emp.LoanAmount,
			TenorMonths:              emp.LoanTenure,
			MonthlyEMI:               emp.MonthlyEmi,
			InterestRate:             emp.InterestRate,
			DBR:                      emp.Dbr,
			BuildingConstruction:     emp.BuildingConstruction == "1",
			FlatExtensionRenovation:  emp.FlatExtensionRenovation == "1",
			LandBuildingConstruction: emp.LandBuildingConstruction == "1",
			ReadymadeFlat:            emp.ReadymadeFlat == "1",
		},
	}

	for _, r := range resp.ReviewDataList {
		review := model.Review{
			Title:     r.Title,
			Subtitle:  r.SubTitle,
			Reviewer:  r.ByName,
			Status:    model.ParseReviewStatus(r.Status),
			Date:      r.ByDate,
			Remarks:   r.ByRemark,
			CIBStatus: r.CibStatus,
			CIBDate:   r.CibDate,
		}
		for _, a := range r.Attachments {
			review.Attachment = append(review.Attachment, model.Attachment{
				Name: a.Name,
				URL:  a.URL,
			})
		}
		bundle.Reviews = append(bundle.Reviews, review)
	}

	return bundle, nil
}
