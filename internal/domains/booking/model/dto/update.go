package dto

import (
	"net/http"
	"strings"

	"frontdesk/shared"
	"frontdesk/shared/coerce"
	"frontdesk/shared/constant"
)

// UpdateBookingRequest is the patch body for a booking. Only the fields
// listed here can be written; identifiers and audit columns are off limits.
// Nil means the field was absent from the request and is left untouched.
type UpdateBookingRequest struct {
	BookingDate  *coerce.String `json:"bookingDate"  validate:"omitempty"`
	CheckInDate  *coerce.String `json:"checkInDate"  validate:"omitempty"`
	CheckOutDate *coerce.String `json:"checkOutDate" validate:"omitempty"`
	Days         *coerce.Number `db:"days"           json:"days"`
	TimeIn       *coerce.String `db:"time_in"        json:"timeIn"`
	TimeOut      *coerce.String `db:"time_out"       json:"timeOut"`

	Salutation  *coerce.String `db:"salutation"  json:"salutation"`
	Name        *coerce.String `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Age         *coerce.Number `db:"age"         json:"age"`
	Gender      *coerce.String `db:"gender"      json:"gender"`
	Address     *coerce.String `db:"address"     json:"address"`
	City        *coerce.String `db:"city"        json:"city"`
	Nationality *coerce.String `db:"nationality" json:"nationality"`
	MobileNo    *coerce.String `db:"mobile_no"   json:"mobileNo"`
	Email       *coerce.String `db:"email"       json:"email"       validate:"omitempty,email"`
	PhoneNo     *coerce.String `db:"phone_no"    json:"phoneNo"`
	BirthDate   *coerce.String `json:"birthDate"   validate:"omitempty"`
	Anniversary *coerce.String `json:"anniversary" validate:"omitempty"`

	CompanyName  *coerce.String `db:"company_name"  json:"companyName"`
	CompanyGSTIN *coerce.String `db:"company_gstin" json:"companyGSTIN"`

	IDProofType   *coerce.String `db:"id_proof_type"       json:"idProofType"`
	IDProofNumber *coerce.String `db:"id_proof_number"     json:"idProofNumber"`
	PhotoURL      *coerce.String `db:"photo_url"           json:"photoUrl"`
	IDProofImage  *coerce.String `db:"id_proof_image_url"  json:"idProofImageUrl"`
	IDProofImage2 *coerce.String `db:"id_proof_image_url2" json:"idProofImageUrl2"`

	RoomNo        *coerce.String `db:"room_no"        json:"roomNo"`
	PlanPackage   *coerce.String `db:"plan_package"   json:"planPackage"`
	NoOfAdults    *coerce.Number `db:"no_of_adults"   json:"noOfAdults"`
	NoOfChildren  *coerce.Number `db:"no_of_children" json:"noOfChildren"`
	Rate          *coerce.Number `db:"rate"           json:"rate"`
	TaxIncluded   *coerce.Bool   `db:"tax_included"   json:"taxIncluded"`
	ServiceCharge *coerce.Bool   `db:"service_charge" json:"serviceCharge"`
	IsLeader      *coerce.Bool   `db:"is_leader"      json:"isLeader"`

	ArrivedFrom    *coerce.String `db:"arrived_from"     json:"arrivedFrom"`
	Destination    *coerce.String `db:"destination"      json:"destination"`
	Remark         *coerce.String `db:"remark"           json:"remark"`
	BusinessSource *coerce.String `db:"business_source"  json:"businessSource"`
	MarketSegment  *coerce.String `db:"market_segment"   json:"marketSegment"`
	PurposeOfVisit *coerce.String `db:"purpose_of_visit" json:"purposeOfVisit"`

	DiscountPercent    *coerce.Number `db:"discount_percent"     json:"discountPercent"`
	DiscountRoomSource *coerce.Number `db:"discount_room_source" json:"discountRoomSource"`
	PaymentMode        *coerce.String `db:"payment_mode"         json:"paymentMode"`
	PaymentStatus      *coerce.String `db:"payment_status"       json:"paymentStatus"`
	BookingRefNo       *coerce.String `db:"booking_ref_no"       json:"bookingRefNo"`
	MgmtBlock          *coerce.String `db:"mgmt_block"           json:"mgmtBlock"`
	BillingInstruction *coerce.String `db:"billing_instruction"  json:"billingInstruction"`

	Temperature *coerce.Number `db:"temperature" json:"temperature"`
	FromCSV     *coerce.Bool   `db:"from_csv"    json:"fromCSV"`
	EPABX       *coerce.Bool   `db:"epabx"       json:"epabx"`
	VIP         *coerce.Bool   `db:"vip"         json:"vip"`
	Status      *coerce.String `db:"status"      json:"status"`
}

// IsEmpty reports whether no field was sent at all.
func (u *UpdateBookingRequest) IsEmpty() bool {
	return *u == (UpdateBookingRequest{})
}

// SetImages overlays stored document URLs from uploaded files. Uploaded
// files win over URLs sent in the body.
func (u *UpdateBookingRequest) SetImages(images GuestImages) {
	if images.Photo != "" {
		value := coerce.String(images.Photo)
		u.PhotoURL = &value
	}

	if images.IDProof != "" {
		value := coerce.String(images.IDProof)
		u.IDProofImage = &value
	}

	if images.IDProof2 != "" {
		value := coerce.String(images.IDProof2)
		u.IDProofImage2 = &value
	}
}

// FromForm fills the patch from multipart form values. Only keys present in
// the form are set, so absent fields stay untouched.
func (u *UpdateBookingRequest) FromForm(r *http.Request) {
	if r.MultipartForm == nil {
		return
	}

	stringField := func(key string) **coerce.String {
		fields := map[string]**coerce.String{
			"bookingDate":                 &u.BookingDate,
			"checkInDate":                 &u.CheckInDate,
			"checkOutDate":                &u.CheckOutDate,
			"timeIn":                      &u.TimeIn,
			"timeOut":                     &u.TimeOut,
			"salutation":                  &u.Salutation,
			"name":                        &u.Name,
			"gender":                      &u.Gender,
			"address":                     &u.Address,
			"city":                        &u.City,
			"nationality":                 &u.Nationality,
			"mobileNo":                    &u.MobileNo,
			"email":                       &u.Email,
			"phoneNo":                     &u.PhoneNo,
			"birthDate":                   &u.BirthDate,
			"anniversary":                 &u.Anniversary,
			"companyName":                 &u.CompanyName,
			"companyGSTIN":                &u.CompanyGSTIN,
			"idProofType":                 &u.IDProofType,
			"idProofNumber":               &u.IDProofNumber,
			constant.FormFilePhoto:        &u.PhotoURL,
			constant.FormFileIDProof:      &u.IDProofImage,
			constant.FormFileIDProofAlt:   &u.IDProofImage2,
			"roomNo":                      &u.RoomNo,
			"planPackage":                 &u.PlanPackage,
			"arrivedFrom":                 &u.ArrivedFrom,
			"destination":                 &u.Destination,
			"remark":                      &u.Remark,
			"businessSource":              &u.BusinessSource,
			"marketSegment":               &u.MarketSegment,
			"purposeOfVisit":              &u.PurposeOfVisit,
			"paymentMode":                 &u.PaymentMode,
			"paymentStatus":               &u.PaymentStatus,
			"bookingRefNo":                &u.BookingRefNo,
			"mgmtBlock":                   &u.MgmtBlock,
			"billingInstruction":          &u.BillingInstruction,
			"status":                      &u.Status,
		}

		return fields[key]
	}

	numberField := func(key string) **coerce.Number {
		fields := map[string]**coerce.Number{
			"days":               &u.Days,
			"age":                &u.Age,
			"noOfAdults":         &u.NoOfAdults,
			"noOfChildren":       &u.NoOfChildren,
			"rate":               &u.Rate,
			"discountPercent":    &u.DiscountPercent,
			"discountRoomSource": &u.DiscountRoomSource,
			"temperature":        &u.Temperature,
		}

		return fields[key]
	}

	boolField := func(key string) **coerce.Bool {
		fields := map[string]**coerce.Bool{
			"taxIncluded":   &u.TaxIncluded,
			"serviceCharge": &u.ServiceCharge,
			"isLeader":      &u.IsLeader,
			"fromCSV":       &u.FromCSV,
			"epabx":         &u.EPABX,
			"vip":           &u.VIP,
		}

		return fields[key]
	}

	for key, values := range r.MultipartForm.Value {
		if len(values) == 0 {
			continue
		}

		raw := values[0]

		if target := numberField(key); target != nil {
			value := coerce.Number(coerce.ToNumber(raw))
			*target = &value

			continue
		}

		if target := boolField(key); target != nil {
			value := coerce.Bool(coerce.ToBool(raw))
			*target = &value

			continue
		}

		if target := stringField(key); target != nil {
			value := coerce.String(strings.TrimSpace(raw))
			*target = &value
		}
	}
}

// UpdateFields converts the set fields into a column/value map, parsing the
// date fields on the way. An empty date string clears the column, except for
// booking_date: that column is not nullable, so an empty value is dropped
// from the patch instead.
func (u *UpdateBookingRequest) UpdateFields(user string) (map[string]any, error) {
	fields := shared.TransformFields(*u, user)

	dates := map[string]*coerce.String{
		"booking_date":   u.BookingDate,
		"check_in_date":  u.CheckInDate,
		"check_out_date": u.CheckOutDate,
		"birth_date":     u.BirthDate,
		"anniversary":    u.Anniversary,
	}

	for column, value := range dates {
		if value == nil {
			continue
		}

		parsed, err := parseDate(string(*value))
		if err != nil {
			return nil, err
		}

		if parsed == nil && column == "booking_date" {
			continue
		}

		fields[column] = parsed
	}

	return fields, nil
}

type UpdateStatusRequest struct {
	Status coerce.String `json:"status" validate:"required"`
}
