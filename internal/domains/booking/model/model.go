package model

import (
	"fmt"
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "guest_bookings"
	EntityName = "booking"

	// GRCSequence feeds the registration-card numbers. Reading it is
	// atomic, so concurrent check-ins never share a GRC number.
	GRCSequence = "guest_bookings_grc_seq"

	FieldID            = "id"
	FieldGRCNo         = "grc_no"
	FieldName          = "name"
	FieldRoomNo        = "room_no"
	FieldMobileNo      = "mobile_no"
	FieldPhoneNo       = "phone_no"
	FieldCity          = "city"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
)

// Booking is one guest registration card. A returning guest is looked up by
// the GRC number of a previous stay, so guest identity fields live on the
// booking itself rather than in a separate guest table.
type Booking struct {
	ID    string `db:"id"`
	GRCNo string `db:"grc_no"`

	BookingDate  time.Time  `db:"booking_date"`
	CheckInDate  *time.Time `db:"check_in_date"`
	CheckOutDate *time.Time `db:"check_out_date"`
	Days         int        `db:"days"`
	TimeIn       string     `db:"time_in"`
	TimeOut      string     `db:"time_out"`

	Salutation  string     `db:"salutation"`
	Name        string     `db:"name"`
	Age         int        `db:"age"`
	Gender      string     `db:"gender"`
	Address     string     `db:"address"`
	City        string     `db:"city"`
	Nationality string     `db:"nationality"`
	MobileNo    string     `db:"mobile_no"`
	Email       string     `db:"email"`
	PhoneNo     string     `db:"phone_no"`
	BirthDate   *time.Time `db:"birth_date"`
	Anniversary *time.Time `db:"anniversary"`

	CompanyName  string `db:"company_name"`
	CompanyGSTIN string `db:"company_gstin"`

	IDProofType      string `db:"id_proof_type"`
	IDProofNumber    string `db:"id_proof_number"`
	PhotoURL         string `db:"photo_url"`
	IDProofImageURL  string `db:"id_proof_image_url"`
	IDProofImage2URL string `db:"id_proof_image_url2"`

	RoomNo        string  `db:"room_no"`
	PlanPackage   string  `db:"plan_package"`
	NoOfAdults    int     `db:"no_of_adults"`
	NoOfChildren  int     `db:"no_of_children"`
	Rate          float64 `db:"rate"`
	TaxIncluded   bool    `db:"tax_included"`
	ServiceCharge bool    `db:"service_charge"`
	IsLeader      bool    `db:"is_leader"`

	ArrivedFrom    string `db:"arrived_from"`
	Destination    string `db:"destination"`
	Remark         string `db:"remark"`
	BusinessSource string `db:"business_source"`
	MarketSegment  string `db:"market_segment"`
	PurposeOfVisit string `db:"purpose_of_visit"`

	DiscountPercent    float64 `db:"discount_percent"`
	DiscountRoomSource float64 `db:"discount_room_source"`
	PaymentMode        string  `db:"payment_mode"`
	PaymentStatus      string  `db:"payment_status"`
	BookingRefNo       string  `db:"booking_ref_no"`
	MgmtBlock          string  `db:"mgmt_block"`
	BillingInstruction string  `db:"billing_instruction"`

	Temperature float64 `db:"temperature"`
	FromCSV     bool    `db:"from_csv"`
	EPABX       bool    `db:"epabx"`
	VIP         bool    `db:"vip"`
	Status      string  `db:"status"`

	model.Metadata
}

// GRCNumber formats a sequence value as a registration-card number.
// Values below 1000 are zero padded to three digits; larger values
// print in full.
func GRCNumber(seq int64) string {
	return fmt.Sprintf("GRC-%03d", seq)
}
