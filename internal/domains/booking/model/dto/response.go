package dto

import (
	"time"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
)

func formatDate(value *time.Time) string {
	if value == nil {
		return ""
	}

	return value.Format(constant.DateFormat)
}

type BookingResponse struct {
	ID    string `json:"id"`
	GRCNo string `json:"grcNo"`

	BookingDate  string `json:"bookingDate"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Days         int    `json:"days"`
	TimeIn       string `json:"timeIn"`
	TimeOut      string `json:"timeOut"`

	Salutation  string `json:"salutation"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Nationality string `json:"nationality"`
	MobileNo    string `json:"mobileNo"`
	Email       string `json:"email"`
	PhoneNo     string `json:"phoneNo"`
	BirthDate   string `json:"birthDate"`
	Anniversary string `json:"anniversary"`

	CompanyName  string `json:"companyName"`
	CompanyGSTIN string `json:"companyGSTIN"`

	IDProofType     string `json:"idProofType"`
	IDProofNumber   string `json:"idProofNumber"`
	PhotoURL        string `json:"photoUrl"`
	IDProofImageURL string `json:"idProofImageUrl"`
	IDProofImage2   string `json:"idProofImageUrl2"`

	RoomNo        string  `json:"roomNo"`
	PlanPackage   string  `json:"planPackage"`
	NoOfAdults    int     `json:"noOfAdults"`
	NoOfChildren  int     `json:"noOfChildren"`
	Rate          float64 `json:"rate"`
	TaxIncluded   bool    `json:"taxIncluded"`
	ServiceCharge bool    `json:"serviceCharge"`
	IsLeader      bool    `json:"isLeader"`

	ArrivedFrom    string `json:"arrivedFrom"`
	Destination    string `json:"destination"`
	Remark         string `json:"remark"`
	BusinessSource string `json:"businessSource"`
	MarketSegment  string `json:"marketSegment"`
	PurposeOfVisit string `json:"purposeOfVisit"`

	DiscountPercent    float64 `json:"discountPercent"`
	DiscountRoomSource float64 `json:"discountRoomSource"`
	PaymentMode        string  `json:"paymentMode"`
	PaymentStatus      string  `json:"paymentStatus"`
	BookingRefNo       string  `json:"bookingRefNo"`
	MgmtBlock          string  `json:"mgmtBlock"`
	BillingInstruction string  `json:"billingInstruction"`

	Temperature float64 `json:"temperature"`
	FromCSV     bool    `json:"fromCSV"`
	EPABX       bool    `json:"epabx"`
	VIP         bool    `json:"vip"`
	Status      string  `json:"status"`

	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.GRCNo = mod.GRCNo

	r.BookingDate = mod.BookingDate.Format(constant.DateFormat)
	r.CheckInDate = formatDate(mod.CheckInDate)
	r.CheckOutDate = formatDate(mod.CheckOutDate)
	r.Days = mod.Days
	r.TimeIn = mod.TimeIn
	r.TimeOut = mod.TimeOut

	r.Salutation = mod.Salutation
	r.Name = mod.Name
	r.Age = mod.Age
	r.Gender = mod.Gender
	r.Address = mod.Address
	r.City = mod.City
	r.Nationality = mod.Nationality
	r.MobileNo = mod.MobileNo
	r.Email = mod.Email
	r.PhoneNo = mod.PhoneNo
	r.BirthDate = formatDate(mod.BirthDate)
	r.Anniversary = formatDate(mod.Anniversary)

	r.CompanyName = mod.CompanyName
	r.CompanyGSTIN = mod.CompanyGSTIN

	r.IDProofType = mod.IDProofType
	r.IDProofNumber = mod.IDProofNumber
	r.PhotoURL = mod.PhotoURL
	r.IDProofImageURL = mod.IDProofImageURL
	r.IDProofImage2 = mod.IDProofImage2URL

	r.RoomNo = mod.RoomNo
	r.PlanPackage = mod.PlanPackage
	r.NoOfAdults = mod.NoOfAdults
	r.NoOfChildren = mod.NoOfChildren
	r.Rate = mod.Rate
	r.TaxIncluded = mod.TaxIncluded
	r.ServiceCharge = mod.ServiceCharge
	r.IsLeader = mod.IsLeader

	r.ArrivedFrom = mod.ArrivedFrom
	r.Destination = mod.Destination
	r.Remark = mod.Remark
	r.BusinessSource = mod.BusinessSource
	r.MarketSegment = mod.MarketSegment
	r.PurposeOfVisit = mod.PurposeOfVisit

	r.DiscountPercent = mod.DiscountPercent
	r.DiscountRoomSource = mod.DiscountRoomSource
	r.PaymentMode = mod.PaymentMode
	r.PaymentStatus = mod.PaymentStatus
	r.BookingRefNo = mod.BookingRefNo
	r.MgmtBlock = mod.MgmtBlock
	r.BillingInstruction = mod.BillingInstruction

	r.Temperature = mod.Temperature
	r.FromCSV = mod.FromCSV
	r.EPABX = mod.EPABX
	r.VIP = mod.VIP
	r.Status = mod.Status

	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type SearchBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

func (r *SearchBookingsResponse) FromModels(models []model.Booking, total, page, limit int) {
	r.Total = total
	r.Page = page
	r.TotalPages = shared.CalculateTotalPage(total, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// GuestInfoResponse is the guest-identity projection served by the GRC
// lookup, used to prefill the registration form for a returning guest.
type GuestInfoResponse struct {
	Salutation  string `json:"salutation"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Nationality string `json:"nationality"`
	MobileNo    string `json:"mobileNo"`
	Email       string `json:"email"`
	PhoneNo     string `json:"phoneNo"`
	BirthDate   string `json:"birthDate"`
	Anniversary string `json:"anniversary"`

	IDProofType     string `json:"idProofType"`
	IDProofNumber   string `json:"idProofNumber"`
	IDProofImageURL string `json:"idProofImageUrl"`
	IDProofImage2   string `json:"idProofImageUrl2"`
	PhotoURL        string `json:"photoUrl"`

	CompanyName  string `json:"companyName"`
	CompanyGSTIN string `json:"companyGSTIN"`
}

func (r *GuestInfoResponse) FromModel(mod model.Booking) {
	r.Salutation = mod.Salutation
	r.Name = mod.Name
	r.Age = mod.Age
	r.Gender = mod.Gender
	r.Address = mod.Address
	r.City = mod.City
	r.Nationality = mod.Nationality
	r.MobileNo = mod.MobileNo
	r.Email = mod.Email
	r.PhoneNo = mod.PhoneNo
	r.BirthDate = formatDate(mod.BirthDate)
	r.Anniversary = formatDate(mod.Anniversary)

	r.IDProofType = mod.IDProofType
	r.IDProofNumber = mod.IDProofNumber
	r.IDProofImageURL = mod.IDProofImageURL
	r.IDProofImage2 = mod.IDProofImage2URL
	r.PhotoURL = mod.PhotoURL

	r.CompanyName = mod.CompanyName
	r.CompanyGSTIN = mod.CompanyGSTIN
}
