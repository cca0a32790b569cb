package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
)

const exportSheetName = "Bookings"

// exportHeaders lists the spreadsheet columns in their fixed order.
var exportHeaders = []string{
	"GRC No", "Booking Date", "Check-In Date", "Check-Out Date", "Days",
	"Time In", "Time Out", "Salutation", "Name", "Age", "Gender", "Address",
	"City", "Nationality", "Mobile No", "Email", "Phone No", "Birth Date",
	"Anniversary", "Company Name", "Company GSTIN", "ID Proof Type",
	"ID Proof Number", "Photo URL", "ID Proof Image 1", "ID Proof Image 2",
	"Room No", "Plan Package", "Adults", "Children", "Rate", "Tax Included",
	"Service Charge", "Leader", "Arrived From", "Destination", "Remark",
	"Business Source", "Market Segment", "Purpose of Visit", "Discount %",
	"Discount Source", "Payment Mode", "Payment Status", "Booking Ref No",
	"Mgmt Block", "Billing Instruction", "Temperature", "From CSV", "EPABX",
	"VIP", "Status", "Created At",
}

func displayDateTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(constant.DateTimeDisplayFormat)
}

func displayOptionalDateTime(value *time.Time) string {
	if value == nil {
		return ""
	}

	return value.Format(constant.DateTimeDisplayFormat)
}

func displayOptionalDate(value *time.Time) string {
	if value == nil {
		return ""
	}

	return value.Format(constant.DateDisplayFormat)
}

// Export renders every booking into an XLSX workbook, newest first, and
// returns the file contents.
func (s *serviceImpl) Export(ctx context.Context) (res []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: constant.DefaultValueSortDir,
	}

	bookings, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for export")

		return nil, fmt.Errorf("failed to get bookings for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err = f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, fmt.Errorf("failed to create export sheet: %w", err)
	}

	if err = f.SetSheetRow(exportSheetName, "A1", &exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write export headers: %w", err)
	}

	for i, booking := range bookings {
		row := []any{
			booking.GRCNo,
			displayDateTime(booking.BookingDate),
			displayOptionalDateTime(booking.CheckInDate),
			displayOptionalDateTime(booking.CheckOutDate),
			booking.Days,
			booking.TimeIn,
			booking.TimeOut,
			booking.Salutation,
			booking.Name,
			booking.Age,
			booking.Gender,
			booking.Address,
			booking.City,
			booking.Nationality,
			booking.MobileNo,
			booking.Email,
			booking.PhoneNo,
			displayOptionalDate(booking.BirthDate),
			displayOptionalDate(booking.Anniversary),
			booking.CompanyName,
			booking.CompanyGSTIN,
			booking.IDProofType,
			booking.IDProofNumber,
			booking.PhotoURL,
			booking.IDProofImageURL,
			booking.IDProofImage2URL,
			booking.RoomNo,
			booking.PlanPackage,
			booking.NoOfAdults,
			booking.NoOfChildren,
			booking.Rate,
			booking.TaxIncluded,
			booking.ServiceCharge,
			booking.IsLeader,
			booking.ArrivedFrom,
			booking.Destination,
			booking.Remark,
			booking.BusinessSource,
			booking.MarketSegment,
			booking.PurposeOfVisit,
			booking.DiscountPercent,
			booking.DiscountRoomSource,
			booking.PaymentMode,
			booking.PaymentStatus,
			booking.BookingRefNo,
			booking.MgmtBlock,
			booking.BillingInstruction,
			booking.Temperature,
			booking.FromCSV,
			booking.EPABX,
			booking.VIP,
			booking.Status,
			displayDateTime(booking.CreatedAt),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute export cell: %w", err)
		}

		if err = f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write export row: %w", err)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		log.Error().Err(err).Msg("failed to serialize export workbook")

		return nil, fmt.Errorf("failed to serialize export workbook: %w", err)
	}

	return buffer.Bytes(), nil
}
