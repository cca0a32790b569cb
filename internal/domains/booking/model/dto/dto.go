package dto

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared/coerce"
	"frontdesk/shared/constant"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

// dateFormats lists the accepted layouts for incoming date fields, most
// specific first.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	for _, layout := range dateFormats {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}

	return nil, fmt.Errorf("unrecognized date value %q", value)
}

// GuestImages carries the stored URLs of the uploaded guest documents. An
// uploaded file wins over a URL sent in the request body.
type GuestImages struct {
	Photo    string
	IDProof  string
	IDProof2 string
}

type CreateBookingRequest struct {
	BookingDate  coerce.String `json:"bookingDate"  validate:"omitempty"`
	CheckInDate  coerce.String `json:"checkInDate"  validate:"omitempty"`
	CheckOutDate coerce.String `json:"checkOutDate" validate:"omitempty"`
	Days         coerce.Number `json:"days"`
	TimeIn       coerce.String `json:"timeIn"`
	TimeOut      coerce.String `json:"timeOut"`

	Salutation  coerce.String `json:"salutation"`
	Name        coerce.String `json:"name"        validate:"required,max=100"`
	Age         coerce.Number `json:"age"`
	Gender      coerce.String `json:"gender"`
	Address     coerce.String `json:"address"`
	City        coerce.String `json:"city"`
	Nationality coerce.String `json:"nationality"`
	MobileNo    coerce.String `json:"mobileNo"`
	Email       coerce.String `json:"email"       validate:"omitempty,email"`
	PhoneNo     coerce.String `json:"phoneNo"`
	BirthDate   coerce.String `json:"birthDate"   validate:"omitempty"`
	Anniversary coerce.String `json:"anniversary" validate:"omitempty"`

	CompanyName  coerce.String `json:"companyName"`
	CompanyGSTIN coerce.String `json:"companyGSTIN"`

	IDProofType     coerce.String `json:"idProofType"`
	IDProofNumber   coerce.String `json:"idProofNumber"`
	PhotoURL        coerce.String `json:"photoUrl"`
	IDProofImageURL coerce.String `json:"idProofImageUrl"`
	IDProofImage2   coerce.String `json:"idProofImageUrl2"`

	RoomNo        coerce.String `json:"roomNo"`
	PlanPackage   coerce.String `json:"planPackage"`
	NoOfAdults    coerce.Number `json:"noOfAdults"`
	NoOfChildren  coerce.Number `json:"noOfChildren"`
	Rate          coerce.Number `json:"rate"`
	TaxIncluded   coerce.Bool   `json:"taxIncluded"`
	ServiceCharge coerce.Bool   `json:"serviceCharge"`
	IsLeader      coerce.Bool   `json:"isLeader"`

	ArrivedFrom    coerce.String `json:"arrivedFrom"`
	Destination    coerce.String `json:"destination"`
	Remark         coerce.String `json:"remark"`
	BusinessSource coerce.String `json:"businessSource"`
	MarketSegment  coerce.String `json:"marketSegment"`
	PurposeOfVisit coerce.String `json:"purposeOfVisit"`

	DiscountPercent    coerce.Number `json:"discountPercent"`
	DiscountRoomSource coerce.Number `json:"discountRoomSource"`
	PaymentMode        coerce.String `json:"paymentMode"`
	PaymentStatus      coerce.String `json:"paymentStatus"`
	BookingRefNo       coerce.String `json:"bookingRefNo"`
	MgmtBlock          coerce.String `json:"mgmtBlock"`
	BillingInstruction coerce.String `json:"billingInstruction"`

	Temperature coerce.Number `json:"temperature"`
	FromCSV     coerce.Bool   `json:"fromCSV"`
	EPABX       coerce.Bool   `json:"epabx"`
	VIP         coerce.Bool   `json:"vip"`
	Status      coerce.String `json:"status"`
}

// FromForm fills the request from multipart form values, applying the same
// coercion rules as the JSON path.
func (c *CreateBookingRequest) FromForm(r *http.Request) {
	form := func(key string) string {
		return r.FormValue(key)
	}

	c.BookingDate = coerce.String(strings.TrimSpace(form("bookingDate")))
	c.CheckInDate = coerce.String(strings.TrimSpace(form("checkInDate")))
	c.CheckOutDate = coerce.String(strings.TrimSpace(form("checkOutDate")))
	c.Days = coerce.Number(coerce.ToNumber(form("days")))
	c.TimeIn = coerce.String(strings.TrimSpace(form("timeIn")))
	c.TimeOut = coerce.String(strings.TrimSpace(form("timeOut")))

	c.Salutation = coerce.String(strings.TrimSpace(form("salutation")))
	c.Name = coerce.String(strings.TrimSpace(form("name")))
	c.Age = coerce.Number(coerce.ToNumber(form("age")))
	c.Gender = coerce.String(strings.TrimSpace(form("gender")))
	c.Address = coerce.String(strings.TrimSpace(form("address")))
	c.City = coerce.String(strings.TrimSpace(form("city")))
	c.Nationality = coerce.String(strings.TrimSpace(form("nationality")))
	c.MobileNo = coerce.String(strings.TrimSpace(form("mobileNo")))
	c.Email = coerce.String(strings.TrimSpace(form("email")))
	c.PhoneNo = coerce.String(strings.TrimSpace(form("phoneNo")))
	c.BirthDate = coerce.String(strings.TrimSpace(form("birthDate")))
	c.Anniversary = coerce.String(strings.TrimSpace(form("anniversary")))

	c.CompanyName = coerce.String(strings.TrimSpace(form("companyName")))
	c.CompanyGSTIN = coerce.String(strings.TrimSpace(form("companyGSTIN")))

	c.IDProofType = coerce.String(strings.TrimSpace(form("idProofType")))
	c.IDProofNumber = coerce.String(strings.TrimSpace(form("idProofNumber")))
	c.PhotoURL = coerce.String(strings.TrimSpace(form(constant.FormFilePhoto)))
	c.IDProofImageURL = coerce.String(strings.TrimSpace(form(constant.FormFileIDProof)))
	c.IDProofImage2 = coerce.String(strings.TrimSpace(form(constant.FormFileIDProofAlt)))

	c.RoomNo = coerce.String(strings.TrimSpace(form("roomNo")))
	c.PlanPackage = coerce.String(strings.TrimSpace(form("planPackage")))
	c.NoOfAdults = coerce.Number(coerce.ToNumber(form("noOfAdults")))
	c.NoOfChildren = coerce.Number(coerce.ToNumber(form("noOfChildren")))
	c.Rate = coerce.Number(coerce.ToNumber(form("rate")))
	c.TaxIncluded = coerce.Bool(coerce.ToBool(form("taxIncluded")))
	c.ServiceCharge = coerce.Bool(coerce.ToBool(form("serviceCharge")))
	c.IsLeader = coerce.Bool(coerce.ToBool(form("isLeader")))

	c.ArrivedFrom = coerce.String(strings.TrimSpace(form("arrivedFrom")))
	c.Destination = coerce.String(strings.TrimSpace(form("destination")))
	c.Remark = coerce.String(strings.TrimSpace(form("remark")))
	c.BusinessSource = coerce.String(strings.TrimSpace(form("businessSource")))
	c.MarketSegment = coerce.String(strings.TrimSpace(form("marketSegment")))
	c.PurposeOfVisit = coerce.String(strings.TrimSpace(form("purposeOfVisit")))

	c.DiscountPercent = coerce.Number(coerce.ToNumber(form("discountPercent")))
	c.DiscountRoomSource = coerce.Number(coerce.ToNumber(form("discountRoomSource")))
	c.PaymentMode = coerce.String(strings.TrimSpace(form("paymentMode")))
	c.PaymentStatus = coerce.String(strings.TrimSpace(form("paymentStatus")))
	c.BookingRefNo = coerce.String(strings.TrimSpace(form("bookingRefNo")))
	c.MgmtBlock = coerce.String(strings.TrimSpace(form("mgmtBlock")))
	c.BillingInstruction = coerce.String(strings.TrimSpace(form("billingInstruction")))

	c.Temperature = coerce.Number(coerce.ToNumber(form("temperature")))
	c.FromCSV = coerce.Bool(coerce.ToBool(form("fromCSV")))
	c.EPABX = coerce.Bool(coerce.ToBool(form("epabx")))
	c.VIP = coerce.Bool(coerce.ToBool(form("vip")))
	c.Status = coerce.String(strings.TrimSpace(form("status")))
}

// ToModel builds the persisted booking. The GRC number is assigned by the
// caller, and uploaded document URLs take precedence over URLs sent in the
// body.
func (c *CreateBookingRequest) ToModel(grcNo, user string, images GuestImages) (model.Booking, error) {
	bookingDate := timezone.Now()

	if c.BookingDate != "" {
		parsed, err := parseDate(string(c.BookingDate))
		if err != nil {
			return model.Booking{}, err
		}

		bookingDate = *parsed
	}

	checkInDate, err := parseDate(string(c.CheckInDate))
	if err != nil {
		return model.Booking{}, err
	}

	checkOutDate, err := parseDate(string(c.CheckOutDate))
	if err != nil {
		return model.Booking{}, err
	}

	birthDate, err := parseDate(string(c.BirthDate))
	if err != nil {
		return model.Booking{}, err
	}

	anniversary, err := parseDate(string(c.Anniversary))
	if err != nil {
		return model.Booking{}, err
	}

	photoURL := images.Photo
	if photoURL == "" {
		photoURL = string(c.PhotoURL)
	}

	idProofImageURL := images.IDProof
	if idProofImageURL == "" {
		idProofImageURL = string(c.IDProofImageURL)
	}

	idProofImage2URL := images.IDProof2
	if idProofImage2URL == "" {
		idProofImage2URL = string(c.IDProofImage2)
	}

	return model.Booking{
		ID:    uuid.NewString(),
		GRCNo: grcNo,

		BookingDate:  bookingDate,
		CheckInDate:  checkInDate,
		CheckOutDate: checkOutDate,
		Days:         int(c.Days),
		TimeIn:       string(c.TimeIn),
		TimeOut:      string(c.TimeOut),

		Salutation:  string(c.Salutation),
		Name:        string(c.Name),
		Age:         int(c.Age),
		Gender:      string(c.Gender),
		Address:     string(c.Address),
		City:        string(c.City),
		Nationality: string(c.Nationality),
		MobileNo:    string(c.MobileNo),
		Email:       string(c.Email),
		PhoneNo:     string(c.PhoneNo),
		BirthDate:   birthDate,
		Anniversary: anniversary,

		CompanyName:  string(c.CompanyName),
		CompanyGSTIN: string(c.CompanyGSTIN),

		IDProofType:      string(c.IDProofType),
		IDProofNumber:    string(c.IDProofNumber),
		PhotoURL:         photoURL,
		IDProofImageURL:  idProofImageURL,
		IDProofImage2URL: idProofImage2URL,

		RoomNo:        string(c.RoomNo),
		PlanPackage:   string(c.PlanPackage),
		NoOfAdults:    int(c.NoOfAdults),
		NoOfChildren:  int(c.NoOfChildren),
		Rate:          float64(c.Rate),
		TaxIncluded:   bool(c.TaxIncluded),
		ServiceCharge: bool(c.ServiceCharge),
		IsLeader:      bool(c.IsLeader),

		ArrivedFrom:    string(c.ArrivedFrom),
		Destination:    string(c.Destination),
		Remark:         string(c.Remark),
		BusinessSource: string(c.BusinessSource),
		MarketSegment:  string(c.MarketSegment),
		PurposeOfVisit: string(c.PurposeOfVisit),

		DiscountPercent:    float64(c.DiscountPercent),
		DiscountRoomSource: float64(c.DiscountRoomSource),
		PaymentMode:        string(c.PaymentMode),
		PaymentStatus:      string(c.PaymentStatus),
		BookingRefNo:       string(c.BookingRefNo),
		MgmtBlock:          string(c.MgmtBlock),
		BillingInstruction: string(c.BillingInstruction),

		Temperature: float64(c.Temperature),
		FromCSV:     bool(c.FromCSV),
		EPABX:       bool(c.EPABX),
		VIP:         bool(c.VIP),
		Status:      string(c.Status),

		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}
