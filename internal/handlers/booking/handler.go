package booking

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
)

// searchColumns are matched case-insensitively against the search term.
var searchColumns = []string{
	model.FieldName,
	model.FieldGRCNo,
	model.FieldRoomNo,
	model.FieldMobileNo,
	model.FieldPhoneNo,
	model.FieldCity,
}

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/search", handler.SearchBookings)
		routerGroup.Get("/export", handler.ExportBookings)
		routerGroup.Get("/guest/{grcNo}", handler.GetGuestInfoByGRC)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Patch("/{id}/status", handler.UpdateBookingStatus)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get(constant.RequestHeaderContentType), constant.ContentTypeMultipartFormData)
}

// CreateBooking registers a new guest booking. It accepts either a JSON body
// or a multipart form carrying guest document images.
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}
	images := dto.GuestImages{}

	if isMultipart(r) {
		if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse multipart form")

			response.WithError(w, err)

			return
		}

		req.FromForm(r)

		if err := validator.ValidateStruct(&req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate form")

			response.WithError(w, err)

			return
		}

		uploaded, err := handler.service.UploadGuestImages(ctx, r.MultipartForm)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to upload guest images")

			response.WithError(w, err)

			return
		}

		images = uploaded
	} else if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req, images)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created with GRC number " + booking.GRCNo)

	response.WithJSON(w, http.StatusCreated, response.M{"booking": booking})
}

// GetBookings lists bookings, newest first. Without explicit pagination the
// full register is returned.
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}
	queryParams.FromRequest(r, false)

	bookings, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, response.M{"bookings": bookings.Bookings})
}

// SearchBookings filters the register by a free-text term plus optional
// status filters, with pagination.
func (handler *Handler) SearchBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	search := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamSearch))
	status := r.URL.Query().Get("status")
	paymentStatus := r.URL.Query().Get("paymentStatus")

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if search != "" {
		searchGroup := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters:  []any{},
		}

		for _, column := range searchColumns {
			searchGroup.Filters = append(searchGroup.Filters, gDto.Filter{
				ArgName:  "search_" + column,
				Field:    column,
				Operator: gDto.FilterOperatorLike,
				Value:    search,
				Table:    model.TableName,
			})
		}

		filterGroup.Filters = append(filterGroup.Filters, searchGroup)
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if paymentStatus != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPaymentStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    paymentStatus,
			Table:    model.TableName,
		})
	}

	result, err := handler.service.Search(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, response.M{
		"bookings":   result.Bookings,
		"total":      result.Total,
		"page":       result.Page,
		"totalPages": result.TotalPages,
	})
}

// ExportBookings streams the full register as an XLSX attachment.
func (handler *Handler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportBookings")
	defer scope.End()

	data, err := handler.service.Export(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings exported")

	response.WithFile(w, constant.ExportFileName, constant.ContentTypeXLSX, data)
}

// GetGuestInfoByGRC returns the guest-identity fields of the most recent
// booking under the given GRC number.
func (handler *Handler) GetGuestInfoByGRC(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestInfoByGRC")
	defer scope.End()

	grcNo := chi.URLParam(r, constant.RequestParamGRCNo)

	guest, err := handler.service.GuestInfoByGRC(ctx, grcNo)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest info")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, response.M{"data": guest})
}

func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, response.M{"booking": booking})
}

// UpdateBooking patches a booking. Like create, it accepts JSON or a
// multipart form with replacement document images.
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}

	if isMultipart(r) {
		if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse multipart form")

			response.WithError(w, err)

			return
		}

		req.FromForm(r)

		if err := validator.ValidateStruct(&req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate form")

			response.WithError(w, err)

			return
		}

		images, err := handler.service.UploadGuestImages(ctx, r.MultipartForm)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to upload guest images")

			response.WithError(w, err)

			return
		}

		req.SetImages(images)
	} else if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking updated by user " + user)

	response.WithJSON(w, http.StatusOK, response.M{"booking": booking})
}

func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.UpdateStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, response.M{"booking": booking})
}

func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking deleted")
}
