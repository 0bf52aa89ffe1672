package controllers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/washdesk/washdesk-backend/internal/records"
	"github.com/washdesk/washdesk-backend/pkg/db/models"
	"github.com/washdesk/washdesk-backend/pkg/legacy"
)

// recordView is the wire shape of a wash record. Category and type carry
// both the canonical code and the display name older clients expect.
type recordView struct {
	ID         uuid.UUID  `json:"id"`
	VehicleID  uuid.UUID  `json:"vehicle_id"`
	WasherID   uuid.UUID  `json:"washer_id"`
	CompanyID  *uuid.UUID `json:"company_id,omitempty"`
	DiscountID *uuid.UUID `json:"discount_id,omitempty"`

	LicensePlate   string  `json:"license_plate"`
	CompanyName    *string `json:"company_name,omitempty"`
	WasherUsername string  `json:"washer_username"`

	CarCategory     string `json:"car_category"`
	CarCategoryName string `json:"car_category_name"`
	WashType        string `json:"wash_type"`
	WashTypeName    string `json:"wash_type_name"`

	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	BoxNumber          int             `json:"box_number"`

	OriginalPrice   decimal.Decimal `json:"original_price"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	WasherCut       decimal.Decimal `json:"washer_cut"`

	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	PaymentMethod *string    `json:"payment_method,omitempty"`
	IsFinished    bool       `json:"is_finished"`
	IsPaid        bool       `json:"is_paid"`

	CreatedByID uuid.UUID `json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newRecordView(record *models.WashRecord) recordView {
	view := recordView{
		ID:                 record.ID,
		VehicleID:          record.VehicleID,
		WasherID:           record.WasherID,
		CompanyID:          record.CompanyID,
		DiscountID:         record.DiscountID,
		LicensePlate:       record.LicensePlate,
		CompanyName:        record.CompanyName,
		WasherUsername:     record.WasherUsername,
		CarCategory:        record.CarCategory,
		CarCategoryName:    legacy.CarCategoryName(record.CarCategory),
		WashType:           record.WashType,
		WashTypeName:       legacy.WashTypeName(record.WashType),
		DiscountPercentage: record.DiscountPercentage,
		BoxNumber:          record.BoxNumber,
		OriginalPrice:      record.OriginalPrice,
		DiscountedPrice:    record.DiscountedPrice,
		WasherCut:          record.WasherCut,
		StartTime:          record.StartTime,
		EndTime:            record.EndTime,
		IsFinished:         record.Finished(),
		IsPaid:             record.Paid(),
		CreatedByID:        record.CreatedByID,
		CreatedAt:          record.CreatedAt,
		UpdatedAt:          record.UpdatedAt,
	}
	if record.PaymentMethod != nil {
		method := record.PaymentMethod.String()
		view.PaymentMethod = &method
	}
	return view
}

type recordPageView struct {
	Records    []recordView `json:"records"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

func newRecordPageView(page *records.Page) recordPageView {
	views := make([]recordView, 0, len(page.Records))
	for i := range page.Records {
		views = append(views, newRecordView(&page.Records[i]))
	}
	return recordPageView{Records: views, NextCursor: page.NextCursor}
}

type washerView struct {
	ID               uuid.UUID       `json:"id"`
	Username         string          `json:"username"`
	Name             string          `json:"name"`
	Surname          string          `json:"surname"`
	Contact          string          `json:"contact"`
	Active           bool            `json:"active"`
	SalaryPercentage decimal.Decimal `json:"salary_percentage"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func newWasherView(washer *models.Washer) washerView {
	return washerView{
		ID:               washer.ID,
		Username:         washer.Username,
		Name:             washer.Name,
		Surname:          washer.Surname,
		Contact:          washer.Contact,
		Active:           washer.Active,
		SalaryPercentage: washer.SalaryPercentage,
		CreatedAt:        washer.CreatedAt,
		UpdatedAt:        washer.UpdatedAt,
	}
}

type discountView struct {
	ID         uuid.UUID       `json:"id"`
	CompanyID  uuid.UUID       `json:"company_id"`
	Percentage decimal.Decimal `json:"percentage"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func newDiscountView(discount *models.Discount) discountView {
	return discountView{
		ID:         discount.ID,
		CompanyID:  discount.CompanyID,
		Percentage: discount.Percentage,
		Active:     discount.Active,
		CreatedAt:  discount.CreatedAt,
		UpdatedAt:  discount.UpdatedAt,
	}
}

type companyView struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Contact   string         `json:"contact"`
	Discounts []discountView `json:"discounts"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func newCompanyView(company *models.Company) companyView {
	discounts := make([]discountView, 0, len(company.Discounts))
	for i := range company.Discounts {
		discounts = append(discounts, newDiscountView(&company.Discounts[i]))
	}
	return companyView{
		ID:        company.ID,
		Name:      company.Name,
		Contact:   company.Contact,
		Discounts: discounts,
		CreatedAt: company.CreatedAt,
		UpdatedAt: company.UpdatedAt,
	}
}

type vehicleView struct {
	ID              uuid.UUID `json:"id"`
	LicensePlate    string    `json:"license_plate"`
	CarCategory     string    `json:"car_category"`
	CarCategoryName string    `json:"car_category_name"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newVehicleView(vehicle *models.Vehicle) vehicleView {
	return vehicleView{
		ID:              vehicle.ID,
		LicensePlate:    vehicle.LicensePlate,
		CarCategory:     vehicle.CarCategory,
		CarCategoryName: legacy.CarCategoryName(vehicle.CarCategory),
		CreatedAt:       vehicle.CreatedAt,
		UpdatedAt:       vehicle.UpdatedAt,
	}
}
